// Package employee validates mobility forms and registers them with the
// employees API.
package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

var ErrInvalidForm = errors.New("invalid form")

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Errors map[mobility.Field]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field(s) rejected", ErrInvalidForm, len(e.Errors))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}

//go:generate mockgen -source=service.go -destination=client_mock.go -package=employee
type Client interface {
	CreateEmployee(ctx context.Context, p Payload) (json.RawMessage, error)
}

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Submit validates the form and, when it passes, sends it upstream. The form's
// error set is replaced by the validation run.
func (s *Service) Submit(ctx context.Context, f *mobility.Form) (json.RawMessage, error) {
	if !f.Validate() {
		return nil, &ValidationError{Errors: f.Errors()}
	}

	body, err := s.client.CreateEmployee(ctx, NewPayload(f))
	if err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	return body, nil
}
