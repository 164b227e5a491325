package service

import (
	"context"

	"github.com/smallbiznis/tindahan/internal/auth/domain"
	"github.com/smallbiznis/tindahan/internal/gateway"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Gateway gateway.Gateway
	Log     *zap.Logger
}

type Service struct {
	gw  gateway.Gateway
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		gw:  p.Gateway,
		log: p.Log.Named("auth.service"),
	}
}

func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	return s.call(ctx, gateway.ActionLogin, creds)
}

func (s *Service) Register(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	return s.call(ctx, gateway.ActionRegister, creds)
}

func (s *Service) call(ctx context.Context, action string, creds domain.Credentials) (domain.User, error) {
	if err := creds.Validate(); err != nil {
		return domain.User{}, err
	}
	resp, err := s.gw.Call(ctx, action, creds)
	if err != nil {
		return domain.User{}, err
	}
	if resp.User == nil {
		return domain.User{Username: creds.Username}, nil
	}
	return domain.User{Username: resp.User.Username}, nil
}
