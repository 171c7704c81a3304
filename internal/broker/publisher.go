package broker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// CalendarPublisher fans out committed game mutations to a topic exchange so
// calendar frontends can refresh without polling. Routing keys are
// "game.<action>".
type CalendarPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewCalendarPublisher(url, exchange string, log logger.Logger) (*CalendarPublisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, calendar events disabled")
		return &CalendarPublisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &CalendarPublisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *CalendarPublisher) PublishGameEvent(ctx context.Context, event domain.GameEvent) {
	if p.ch == nil {
		p.logger.Debug("calendar event skipped (publisher disabled)",
			logger.String("game_id", event.GameID),
		)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal game event",
			logger.String("game_id", event.GameID),
			logger.String("error", err.Error()),
		)
		return
	}

	key := "game." + event.Action
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		// Broker outages must not fail the booking that triggered the event.
		p.logger.Error("publish game event",
			logger.String("game_id", event.GameID),
			logger.String("routing_key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (p *CalendarPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
