// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package session

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go/logging"
	log "github.com/sirupsen/logrus"
)

// sdkLogger forwards SDK client logs to logrus.
type sdkLogger struct {
	entry *log.Entry
}

func newSDKLogger(l *log.Logger) logging.Logger {
	return &sdkLogger{entry: l.WithField("component", "aws-sdk")}
}

func (l *sdkLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	if classification == logging.Warn {
		l.entry.Warnf(format, v...)
		return
	}
	l.entry.Debugf(format, v...)
}

func clientLogMode(level log.Level) aws.ClientLogMode {
	switch {
	case level >= log.TraceLevel:
		return aws.LogRetries | aws.LogRequestWithBody | aws.LogResponseWithBody
	case level >= log.DebugLevel:
		return aws.LogRetries | aws.LogRequest | aws.LogResponse
	}
	return 0
}
