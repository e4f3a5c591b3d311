package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// snsAPI is the subset of the SNS client used here
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes JSON events to a single SNS topic.
// The subject travels as the "subject" message attribute so subscribers can filter.
type SNSPublisher struct {
	client   snsAPI
	topicARN string
	logger   *slog.Logger
}

// NewSNSPublisher creates a publisher for topicARN
func NewSNSPublisher(client snsAPI, topicARN string, logger *slog.Logger) *SNSPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SNSPublisher{
		client:   client,
		topicARN: topicARN,
		logger:   logger,
	}
}

func (p *SNSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", subject, err)
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"subject": {
				DataType:    aws.String("String"),
				StringValue: aws.String(subject),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}

	p.logger.Debug("event published",
		"subject", subject,
		"message_id", aws.ToString(out.MessageId))
	return nil
}
