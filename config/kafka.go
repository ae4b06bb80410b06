package config

import (
	"archery/utils"
	"fmt"
	"net"
	"strconv"

	"github.com/segmentio/kafka-go"
)

const ReviewDecisionTopic = "review-decisions"

func CreateTopic(topic string) error {
	broker := Env().KafkaBroker
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 30 days retention
			{
				ConfigName:  "retention.ms",
				ConfigValue: "2592000000",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

func GetWriter(topic string) (*kafka.Writer, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	if err := CreateTopic(topic); err != nil {
		return nil, err
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, nil
}
