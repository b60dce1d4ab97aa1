package httpserver

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		ginkgo.When("using metrics middleware", func() {
			ginkgo.It("should collect metrics correctly", func() {
				reader := metric.NewManualReader()
				provider := metric.NewMeterProvider(metric.WithReader(reader))
				otel.SetMeterProvider(provider)

				ResetMetricsForTesting()

				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(10 * time.Millisecond)
					w.WriteHeader(http.StatusOK)
					w.Write([]byte("test response"))
				})

				middleware := MetricsMiddleware()
				handler := middleware(testHandler)

				req := httptest.NewRequest("GET", "/test/endpoint", nil)
				w := httptest.NewRecorder()

				handler.ServeHTTP(w, req)

				gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
				gomega.Expect(w.Body.String()).To(gomega.Equal("test response"))
				gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())
			})
		})
	})

	ginkgo.Context("normalizeEndpoint", func() {
		ginkgo.It("should replace UUID path segments", func() {
			path := "/v1/sessions/182efcc3-5b44-475f-a3d0-0a46c0311fb8/advance"
			gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal("/v1/sessions/_id/advance"))
		})

		ginkgo.It("should normalize the root path", func() {
			gomega.Expect(normalizeEndpoint("/")).To(gomega.Equal("root"))
		})
	})
})
