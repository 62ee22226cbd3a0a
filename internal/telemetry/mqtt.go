// Package telemetry mirrors simulator location samples to an MQTT broker
// so external dashboards can follow the fleet live. Entirely optional; the
// API works the same with publishing disabled.
package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleetdesk/internal/models"
)

// MQTTPublisher pushes location samples to a single topic with QoS 0.
// Publishing is fire-and-forget so a slow broker never stalls a tick.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
}

// NewMQTTPublisher connects to the broker and returns a ready publisher.
func NewMQTTPublisher(brokerURL, clientID, topic string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", brokerURL, err)
	}

	log.WithFields(log.Fields{"broker": brokerURL, "topic": topic}).Info("telemetry publisher connected")
	return &MQTTPublisher{client: client, topic: topic}, nil
}

// Publish sends one sample. Marshal failures are logged and dropped.
func (p *MQTTPublisher) Publish(sample models.LocationSample) {
	payload, err := json.Marshal(sample)
	if err != nil {
		log.WithError(err).Error("failed to marshal location sample")
		return
	}
	p.client.Publish(p.topic, 0, false, payload)
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
