package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/laciaimperator/Online-store/internal/domain"
	"github.com/laciaimperator/Online-store/internal/validation"
)

var customerSchema = validation.Schema{
	"customer_id": validation.String,
	"name":        validation.String,
	"email":       validation.String,
	"phone":       validation.String,
	"address":     validation.String,
}

// CustomerService owns the customer directory. On top of the shared type and
// non-empty checks it enforces the email and phone format rules.
type CustomerService struct {
	customers CustomerStore
}

func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) Add(ctx context.Context, values map[string]interface{}) (*domain.Customer, error) {
	fields, err := requireFields(values, domain.CustomerFields)
	if err != nil {
		return nil, err
	}

	if id, ok := fields["customer_id"].(string); ok {
		exists, err := s.customers.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewError(domain.CodeDuplicateID, "customer_id %s already exists", id)
		}
	}

	if err := validation.Types(fields, customerSchema); err != nil {
		return nil, err
	}
	if err := validation.NonEmpty(fields); err != nil {
		return nil, err
	}
	if err := validation.Email(fields["email"].(string)); err != nil {
		return nil, err
	}
	if err := validation.Phone(fields["phone"].(string)); err != nil {
		return nil, err
	}

	customer := domain.Customer{
		CustomerID: fields["customer_id"].(string),
		Name:       fields["name"].(string),
		Email:      fields["email"].(string),
		Phone:      fields["phone"].(string),
		Address:    fields["address"].(string),
	}
	if err := s.customers.Insert(ctx, customer); err != nil {
		return nil, err
	}

	log.Info().Str("customer_id", customer.CustomerID).Msg("Customer added")
	return &customer, nil
}

// Update re-validates email and phone whenever those fields are supplied.
// customer_id is immutable and rejected as an update field.
func (s *CustomerService) Update(ctx context.Context, customerID string, updates map[string]interface{}) (bool, error) {
	exists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, domain.NewError(domain.CodeNotFound, "no customer with customer_id %s", customerID)
	}

	if len(updates) == 0 {
		return false, domain.NewError(domain.CodeInvalidInput, "no fields supplied for update")
	}
	for field := range updates {
		if !domain.CustomerUpdatable[field] {
			return false, domain.NewError(domain.CodeInvalidField, "field %s is not a valid field for update", field)
		}
	}
	if err := validation.Types(updates, customerSchema); err != nil {
		return false, err
	}
	if err := validation.NonEmpty(updates); err != nil {
		return false, err
	}
	if email, ok := updates["email"].(string); ok {
		if err := validation.Email(email); err != nil {
			return false, err
		}
	}
	if phone, ok := updates["phone"].(string); ok {
		if err := validation.Phone(phone); err != nil {
			return false, err
		}
	}

	modified, err := s.customers.Update(ctx, customerID, updates)
	if err != nil {
		return false, err
	}

	if modified {
		log.Info().Str("customer_id", customerID).Msg("Customer updated")
	} else {
		log.Info().Str("customer_id", customerID).Msg("No changes made to customer")
	}
	return modified, nil
}

func (s *CustomerService) Find(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, customerID)
}

func (s *CustomerService) Delete(ctx context.Context, customerID string) error {
	if err := s.customers.Delete(ctx, customerID); err != nil {
		return err
	}
	log.Info().Str("customer_id", customerID).Msg("Customer deleted")
	return nil
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}
