package contact

import "context"

// Service validates submissions and passes the valid ones to a Sender.
type Service struct {
	validator *Validator
	sender    Sender
}

func NewService(sender Sender) *Service {
	return &Service{validator: NewValidator(), sender: sender}
}

// Submit returns a *ValidationError for invalid input; the sender is not
// called in that case.
func (s *Service) Submit(ctx context.Context, form Form, m Message) (Receipt, error) {
	if err := s.validator.Validate(form, m); err != nil {
		return Receipt{}, err
	}
	if form == FormQuick {
		m.Subject = ""
	}
	return s.sender.Send(ctx, m)
}
