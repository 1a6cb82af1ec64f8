// Package metrics publishes application counters to CloudWatch.
// file: metrics/metrics.go
package metrics

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"go-league-table/logger"
)

// Namespace for all league metrics
const Namespace = "LeagueTable"

// Metric names
const (
	TeamsCreated    = "TeamsCreated"
	MatchesRecorded = "MatchesRecorded"
	MatchesDeleted  = "MatchesDeleted"
	ReportsExported = "ReportsExported"
)

// Publisher records counters. Implementations must not block the request
// on failure; errors are logged.
type Publisher interface {
	Count(name string, dimensions map[string]string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Count(string, map[string]string) {}

// CloudWatch pushes each counter as a single datum.
type CloudWatch struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
	now       func() time.Time
}

// NewCloudWatch wraps an existing client.
func NewCloudWatch(client cloudwatchiface.CloudWatchAPI) *CloudWatch {
	return &CloudWatch{client: client, namespace: Namespace, now: time.Now}
}

// NewFromEnvironment builds a client from the default AWS credential chain.
func NewFromEnvironment() (*CloudWatch, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return NewCloudWatch(cloudwatch.New(sess)), nil
}

func (p *CloudWatch) Count(name string, dimensions map[string]string) {
	datum := &cloudwatch.MetricDatum{
		MetricName: aws.String(name),
		Timestamp:  aws.Time(p.now()),
		Value:      aws.Float64(1),
		Unit:       aws.String(cloudwatch.StandardUnitCount),
	}
	for k, v := range dimensions {
		datum.Dimensions = append(datum.Dimensions, &cloudwatch.Dimension{
			Name:  aws.String(k),
			Value: aws.String(v),
		})
	}

	_, err := p.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(p.namespace),
		MetricData: []*cloudwatch.MetricDatum{datum},
	})
	if err != nil {
		logger.Error.Printf("[metrics] CloudWatch metric failed (%s): %v", name, err)
	}
}
