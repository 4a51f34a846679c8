package services

import (
	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/docgen"
	"github.com/Danielrod221/agriwater-live-app/internal/esign"
	"github.com/Danielrod221/agriwater-live-app/internal/notify"
	"github.com/Danielrod221/agriwater-live-app/internal/payment"
	"github.com/Danielrod221/agriwater-live-app/internal/telemetry"
)

// Package-level collaborators, wired once at startup by api.NewRouter.
// Tests swap in fakes.
var (
	Cfg        *config.Config
	Payments   payment.Provider
	Mailer     notify.Mailer
	Signatures esign.Sender
	Agreements *docgen.Generator
	Reservoir  *telemetry.Client
)

// Init wires the service layer's external collaborators.
func Init(cfg *config.Config, payments payment.Provider, mailer notify.Mailer,
	signatures esign.Sender, agreements *docgen.Generator, reservoir *telemetry.Client) {
	Cfg = cfg
	Payments = payments
	Mailer = mailer
	Signatures = signatures
	Agreements = agreements
	Reservoir = reservoir
}
