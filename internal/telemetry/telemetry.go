package telemetry

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
)

const meterName = "github.com/TomH0011/OnlineBookingSystem"

// Init 初始化 OpenTelemetry 指标
// 指标每 10 秒导出到 logs/chatbot_metrics.log，返回关闭函数
func Init(ctx context.Context, serviceName, version string) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	metricsFile, err := os.OpenFile(filepath.Join(logDir, "chatbot_metrics.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open metrics file: %w", err)
	}

	exporter, err := stdoutmetric.New(
		stdoutmetric.WithWriter(metricsFile),
		stdoutmetric.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(10*time.Second))),
	)
	otel.SetMeterProvider(provider)

	shutdown := func(ctx context.Context) error {
		err := provider.Shutdown(ctx)
		if cerr := metricsFile.Close(); err == nil {
			err = cerr
		}
		return err
	}
	return shutdown, nil
}

// Counter 创建计数器
// Init 之前全局 MeterProvider 是 no-op，计数调用安全但不导出
func Counter(name, description string) metric.Int64Counter {
	counter, err := otel.Meter(meterName).Int64Counter(name,
		metric.WithDescription(description))
	if err != nil {
		log.Printf("[telemetry] failed to create counter %s: %v", name, err)
		counter, _ = noop.Meter{}.Int64Counter(name)
	}
	return counter
}
