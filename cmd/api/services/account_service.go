package services

import (
	"context"

	"jessster/cmd/api/dto"
	"jessster/gateway"
	"jessster/logger"
)

// AccountService drives login, registration and profile calls for the
// single session held by the gateway's token store.
type AccountService struct {
	gw *gateway.Client
}

func NewAccountService(gw *gateway.Client) *AccountService {
	return &AccountService{gw: gw}
}

func (s *AccountService) Login(ctx context.Context, in dto.LoginRequestDTO) error {
	_, err := s.gw.Login(ctx, in.Email, in.Password)
	return err
}

func (s *AccountService) Register(ctx context.Context, in dto.RegisterRequestDTO) (dto.RegisterResponseDTO, error) {
	res, err := s.gw.Register(ctx, gateway.RegisterInput{
		Username:        in.Username,
		Email:           in.Email,
		Password:        in.Password,
		PasswordConfirm: in.PasswordConfirm,
	})
	if err != nil {
		return dto.RegisterResponseDTO{}, err
	}
	return dto.RegisterResponseDTO{
		Status:        res.StatusCode,
		Created:       res.Created(),
		Authenticated: res.Token != "",
	}, nil
}

func (s *AccountService) ExchangeGoogle(ctx context.Context, in dto.GoogleTokenRequestDTO) error {
	_, err := s.gw.ExchangeGoogleToken(ctx, in.IDToken)
	return err
}

func (s *AccountService) ExchangeApple(ctx context.Context, in dto.AppleTokenRequestDTO) error {
	_, err := s.gw.ExchangeAppleToken(ctx, gateway.AppleCredential{
		IdentityToken: in.IdentityToken,
		UserID:        in.UserID,
		FullName:      in.FullName,
		Email:         in.Email,
	})
	return err
}

func (s *AccountService) Logout(ctx context.Context) error {
	return s.gw.Logout(ctx)
}

func (s *AccountService) Session(ctx context.Context) (dto.SessionDTO, error) {
	sess, err := s.gw.Session(ctx)
	if err != nil {
		return dto.SessionDTO{}, err
	}
	return dto.SessionDTO{Authenticated: sess.Authenticated && sess.HasToken()}, nil
}

func (s *AccountService) Profile(ctx context.Context) (dto.ProfileDTO, error) {
	acc, err := s.gw.FetchProfile(ctx)
	if err != nil {
		return dto.ProfileDTO{}, err
	}
	return dto.ProfileDTO{Account: acc, PictureURL: acc.ProfilePictureURL(s.gw.CDNBaseURL())}, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, in dto.ProfileUpdateRequestDTO) error {
	return s.gw.UpdateProfile(ctx, in.Username)
}

// DeleteAccount deletes the account and then clears the session.
func (s *AccountService) DeleteAccount(ctx context.Context) error {
	if err := s.gw.DeleteAccount(ctx); err != nil {
		return err
	}
	if err := s.gw.Logout(ctx); err != nil {
		logger.WarnWithFields("session not cleared after account deletion", logger.Fields{"error": err.Error()})
	}
	return nil
}
