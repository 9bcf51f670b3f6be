package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

const queueName = "catalog_events"

type Config struct {
	URL string
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *logrus.Logger
}

type productEvent struct {
	Event      string    `json:"event"`
	ProductID  int64     `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewClient(cfg Config, log *logrus.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	log.Infof("connected to RabbitMQ, queue %q declared", queueName)
	return &Client{conn: conn, channel: ch, log: log}, nil
}

// 商品ライフサイクルイベントを発行する。失敗はログのみ。
func (c *Client) PublishProductEvent(event string, productID int64) error {
	body, err := json.Marshal(productEvent{
		Event:      event,
		ProductID:  productID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	err = c.channel.Publish(
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		c.log.Warnf("failed to publish %s event: %v", event, err)
		return err
	}
	return nil
}

func (c *Client) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
