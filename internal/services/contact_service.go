package services

import (
	"context"
	"fmt"

	"folio_backend/internal/dto"
	"folio_backend/internal/email"
	"folio_backend/internal/logger"
	"folio_backend/internal/repositories"
	"folio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ContactService relays a visitor's contact-form message to the profile
// owner. The visitor never learns the owner's address: the mail goes out
// from the service account with the visitor set as Reply-To.
type ContactService interface {
	Relay(ctx context.Context, db *gorm.DB, username string, req *dto.ContactMessageRequest) error
}

type contactService struct {
	userRepo repositories.UserRepository
	mailer   email.Mailer
}

func NewContactService(userRepo repositories.UserRepository, mailer email.Mailer) ContactService {
	return &contactService{userRepo: userRepo, mailer: mailer}
}

func (s *contactService) Relay(ctx context.Context, db *gorm.DB, username string, req *dto.ContactMessageRequest) error {
	owner, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	subject := fmt.Sprintf("New message from %s via your portfolio", req.Name)
	body := fmt.Sprintf("From: %s <%s>\r\n\r\n%s", req.Name, req.Email, req.Message)

	if err := s.mailer.Send(owner.Email, req.Email, subject, body); err != nil {
		logger.CtxWithError(ctx, "contact relay delivery failed", err, "username", username)
		return apperrors.ErrMailRelay(err)
	}
	return nil
}
