package usecase

import (
	"context"
	"errors"
	"strings"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"
)

var ErrInvalidPaymentID = errors.New("invalid payment id")

// IPaymentQueryUseCase exposes read-only payment lookups for operators
// driving the manual-replay workflow.

type IPaymentQueryUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error)
}

type PaymentQueryUseCase struct {
	payments interfaces.IPaymentRepository
}

var _ IPaymentQueryUseCase = (*PaymentQueryUseCase)(nil)

func NewPaymentQueryUseCase(payments interfaces.IPaymentRepository) *PaymentQueryUseCase {
	return &PaymentQueryUseCase{payments: payments}
}

func (u *PaymentQueryUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentQueryUseCase) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Payment{}, ErrInvalidSessionID
	}

	p, err := u.payments.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
