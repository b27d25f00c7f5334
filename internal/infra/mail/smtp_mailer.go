// Package mail sends transactional emails over SMTP.
package mail

import (
	"context"
	"log/slog"
	"net/smtp"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/jordan-wright/email"
	"go.uber.org/fx"
)

const (
	poolSize           = 4
	defaultDialTimeout = 10 * time.Second
)

// sender is the part of email.Pool the mailer needs.
type sender interface {
	Send(e *email.Email, timeout time.Duration) error
}

type smtpMailer struct {
	sender  sender
	from    string
	timeout time.Duration
}

// Params holds the dependencies of the mailer, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns an SMTP mailer, or a mailer that only logs when no SMTP host is configured.
func New(params Params) (service.OrderMailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("SMTP not configured, order emails will only be logged")

		return &noopMailer{logger: params.Logger}, nil
	}

	address := cfg.Host + ":" + strconv.Itoa(cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	pool, err := email.NewPool(address, poolSize, auth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP pool")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()

			return nil
		},
	})

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	return newSMTPMailer(pool, cfg.From, timeout), nil
}

func newSMTPMailer(s sender, from string, timeout time.Duration) *smtpMailer {
	return &smtpMailer{
		sender:  s,
		from:    from,
		timeout: timeout,
	}
}

// SendNewOrder emails the store a summary of the order.
func (m *smtpMailer) SendNewOrder(ctx context.Context, to string, order *entity.Order) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	subject, body, err := renderNewOrder(order)
	if err != nil {
		return err
	}

	msg := email.NewEmail()
	msg.From = m.from
	msg.To = []string{to}
	msg.Subject = subject
	msg.HTML = []byte(body)

	if err := m.sender.Send(msg, m.timeout); err != nil {
		return errors.Wrapf(err, "failed to send order email for order %s", order.ID)
	}

	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendNewOrder(ctx context.Context, to string, order *entity.Order) error {
	m.logger.InfoContext(ctx, "Order email (not sent)",
		slog.String("to", to),
		slog.String("orderID", order.ID.String()),
	)

	return nil
}
