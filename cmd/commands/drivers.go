package commands

import (
	"context"
	"fmt"

	brokerRepository "photoadmin/internal/domain/repository/broker"
	"photoadmin/internal/domain/repository/storage"
	"photoadmin/internal/infrastructure/broker"
	"photoadmin/internal/infrastructure/minio"
	"photoadmin/internal/infrastructure/objectstore"
	"photoadmin/internal/infrastructure/s3"
)

type publisher interface {
	brokerRepository.Publisher
	Close() error
}

func newBucket(ctx context.Context, cfg *objectstore.Config) (storage.Bucket, error) {
	switch cfg.Driver {
	case objectstore.DriverMinio:
		client, err := minio.New(cfg)
		if err != nil {
			return nil, err
		}

		return client, nil
	case objectstore.DriverS3:
		client, err := s3.New(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return client, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newPublisher(cfg broker.Config) (publisher, error) {
	switch cfg.Driver {
	case broker.DriverRedis:
		p, err := broker.NewRedisPublisher(cfg)
		if err != nil {
			return nil, err
		}

		return p, nil
	case broker.DriverAMQP:
		p, err := broker.NewAMQPPublisher(cfg)
		if err != nil {
			return nil, err
		}

		return p, nil
	case "":
		return broker.NopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown broker driver %q", cfg.Driver)
	}
}
