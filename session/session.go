// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package session resolves AWS configuration and builds service clients.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/awslabs/shkin/hub"
	"github.com/awslabs/shkin/stream"
	log "github.com/sirupsen/logrus"
)

// ErrNoRegion is returned when no region could be resolved from flags,
// environment or shared configuration.
var ErrNoRegion = errors.New("no region configured: use --region, AWS_REGION or a profile with a region")

// Settings are the connection parameters shared by every command.
type Settings struct {
	Region       string
	Profile      string
	EndpointURL  string
	AccessKey    string
	SecretKey    string
	SessionToken string
	MaxAttempts  int
	Logger       *log.Logger
}

// Session lazily loads one aws.Config and hands out clients built from it.
type Session struct {
	settings Settings
	load     func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)

	once sync.Once
	cfg  aws.Config
	err  error
}

func New(settings Settings) *Session {
	return &Session{
		settings: settings,
		load:     config.LoadDefaultConfig,
	}
}

// Region returns the region requested on the command line, or the resolved
// one once the configuration is loaded.
func (s *Session) Region() string {
	if s.cfg.Region != "" {
		return s.cfg.Region
	}
	return s.settings.Region
}

// Config loads the AWS configuration on first use.
func (s *Session) Config(ctx context.Context) (aws.Config, error) {
	s.once.Do(func() {
		s.cfg, s.err = s.load(ctx, s.loadOptions()...)
		if s.err == nil && s.cfg.Region == "" {
			s.err = ErrNoRegion
		}
	})
	return s.cfg, s.err
}

func (s *Session) loadOptions() []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error
	if s.settings.Region != "" {
		opts = append(opts, config.WithRegion(s.settings.Region))
	}
	if s.settings.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(s.settings.Profile))
	}
	if s.settings.AccessKey != "" && s.settings.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.settings.AccessKey, s.settings.SecretKey, s.settings.SessionToken),
		))
	}
	if s.settings.MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(s.settings.MaxAttempts))
	}
	if s.settings.Logger != nil {
		opts = append(opts,
			config.WithLogger(newSDKLogger(s.settings.Logger)),
			config.WithClientLogMode(clientLogMode(s.settings.Logger.GetLevel())),
		)
	}
	return opts
}

// Kinesis returns a Kinesis Data Streams client.
func (s *Session) Kinesis(ctx context.Context) (stream.KDS, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}
	return kinesis.NewFromConfig(cfg, func(o *kinesis.Options) {
		if s.settings.EndpointURL != "" {
			o.BaseEndpoint = aws.String(s.settings.EndpointURL)
		}
	}), nil
}

// SecurityHub returns a Security Hub client.
func (s *Session) SecurityHub(ctx context.Context) (hub.Hub, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}
	return securityhub.NewFromConfig(cfg, func(o *securityhub.Options) {
		if s.settings.EndpointURL != "" {
			o.BaseEndpoint = aws.String(s.settings.EndpointURL)
		}
	}), nil
}
