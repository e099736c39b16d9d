// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher sends a JSON payload to a topic.
type Publisher interface {
	PublishJSON(topic string, v any) error
}

type mqttPublisher struct {
	client mqtt.Client
}

func (p mqttPublisher) PublishJSON(topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal (%s): %w", topic, err)
	}
	// retained, so late subscribers get the last value
	token := p.client.Publish(topic, 0, true, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT publish error (%s): %w", topic, token.Error())
	}
	return nil
}

func connectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("MQTT connect error: %w", token.Error())
	}
	return client, nil
}

// subscribeJSON decodes every message on topic into a T and hands it to fn.
func subscribeJSON[T any](client mqtt.Client, component, topic string, fn func(T)) error {
	token := client.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var v T
		if err := json.Unmarshal(msg.Payload(), &v); err != nil {
			log.Printf("%s: %s unmarshal error: %v", component, topic, err)
			return
		}
		fn(v)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("%s: subscribed to %s", component, topic)
	return nil
}
