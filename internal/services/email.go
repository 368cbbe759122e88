package services

import (
	"context"
	"fmt"
	"log"

	"conferencecompanion/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendImportReport sends the import diagnostics report using the "import_report" template.
func (s *emailService) SendImportReport(ctx context.Context, to string, data *domain.ImportReportEmailData) error {
	if data == nil {
		return fmt.Errorf("import report data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("import_report", data)
	if err != nil {
		return fmt.Errorf("failed to render import_report template: %w", err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send import report email: %w", err)
	}
	log.Printf("[EMAIL] Import report sent to %s", to)
	return nil
}
