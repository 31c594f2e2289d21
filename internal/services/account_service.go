package services

import (
	"errors"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

var (
	// ErrMobileRegistered mirrors the signup rule: a known mobile must
	// log in instead of creating a second account.
	ErrMobileRegistered = errors.New("mobile number already registered, please login instead")
	ErrUnknownMobile    = errors.New("mobile number not found")
)

// AccountService implements the mobile-number identity model: no
// password, no token, no server session. Login is a lookup.
type AccountService struct {
	Users repos.UserRepo
}

func NewAccountService(users repos.UserRepo) *AccountService {
	return &AccountService{Users: users}
}

func (s *AccountService) Signup(name, mobile, email, address string) (domain.User, error) {
	if _, err := s.Users.ByMobile(mobile); err == nil {
		return domain.User{}, ErrMobileRegistered
	} else if !errors.Is(err, repos.ErrNotFound) {
		return domain.User{}, err
	}
	return s.Users.Upsert(domain.User{
		Name:    name,
		Mobile:  mobile,
		Email:   email,
		Address: address,
	})
}

func (s *AccountService) Login(mobile string) (domain.User, error) {
	u, err := s.Users.ByMobile(mobile)
	if errors.Is(err, repos.ErrNotFound) {
		return domain.User{}, ErrUnknownMobile
	}
	return u, err
}

// UpdateProfile upserts by mobile; the stored userId and registeredOn
// are preserved for existing customers.
func (s *AccountService) UpdateProfile(name, mobile, email, address string) (domain.User, error) {
	return s.Users.Upsert(domain.User{
		Name:    name,
		Mobile:  mobile,
		Email:   email,
		Address: address,
	})
}
