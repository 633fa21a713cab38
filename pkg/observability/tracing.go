package observability

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer provides distributed tracing capabilities
type Tracer struct {
	serviceName string
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string) *Tracer {
	return &Tracer{
		serviceName: serviceName,
	}
}

// ServiceName returns the name segments are reported under
func (t *Tracer) ServiceName() string {
	return t.serviceName
}

// Middleware opens one X-Ray segment per incoming request
func (t *Tracer) Middleware(next http.Handler) http.Handler {
	return xray.Handler(xray.NewFixedSegmentNamer(t.serviceName), next)
}

// InstrumentAWS adds X-Ray subsegments to every AWS SDK call made with cfg
func (t *Tracer) InstrumentAWS(cfg *aws.Config) {
	awsv2.AWSV2Instrumentor(&cfg.APIOptions)
}
