// Package auth signs the operator in to a site. Access codes are not
// checked against anything; sign in only remembers the site.
package auth

import (
	// Go Internal Packages
	"context"
	"strings"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	utils "tap-terminal/utils"

	// External Packages
	"go.uber.org/zap"
)

type SiteStore interface {
	SelectSite(ctx context.Context, site string) error
	Logout(ctx context.Context) error
}

type Service struct {
	sites  SiteStore
	delay  time.Duration
	logger *zap.Logger
}

func NewService(sites SiteStore, delay time.Duration, logger *zap.Logger) *Service {
	return &Service{sites: sites, delay: delay, logger: logger}
}

// Login requires a site id and an access code.
func (s *Service) Login(ctx context.Context, siteID, accessCode string) error {
	siteID, accessCode = strings.TrimSpace(siteID), strings.TrimSpace(accessCode)
	ve := errors.ValidationErrs()
	if siteID == "" {
		ve.Add("site_id", "cannot be empty")
	}
	if accessCode == "" {
		ve.Add("access_code", "cannot be empty")
	}
	if err := ve.Err(); err != nil {
		return errors.E(errors.Invalid, "please enter both site id and access code", err)
	}

	if err := utils.Sleep(ctx, s.delay); err != nil {
		return err
	}
	if err := s.sites.SelectSite(ctx, siteID); err != nil {
		return err
	}
	s.logger.Info("operator signed in", zap.String("site", siteID))
	return nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sites.Logout(ctx); err != nil {
		return err
	}
	s.logger.Info("operator signed out")
	return nil
}
