package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/scatterviz/internal/config"
	"github.com/okian/scatterviz/internal/domain/variant"
	"github.com/okian/scatterviz/pkg/logger"
)

func init() {
	if err := logger.InitWithWriter(io.Discard); err != nil {
		panic(err)
	}
}

func TestRun(t *testing.T) {
	convey.Convey("Given the one-shot mode writing to stdout", t, func() {
		t.Setenv("SCATTERVIZ_OUTPUT_PATH", "-")
		var out bytes.Buffer

		convey.Convey("When running with defaults", func() {
			err := run(context.Background(), &out)

			convey.Convey("Then the builtin weather chart is written as SVG", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.String(), convey.ShouldStartWith, "<?xml")
				convey.So(strings.Count(out.String(), "<circle"), convey.ShouldEqual, 13)
			})
		})

		convey.Convey("When the configuration is invalid", func() {
			t.Setenv("SCATTERVIZ_FORMAT", "gif")
			err := run(context.Background(), &out)

			convey.Convey("Then it fails before rendering", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(out.Len(), convey.ShouldEqual, 0)
			})
		})
	})
}

func TestRenderOnce(t *testing.T) {
	convey.Convey("Given a mood dataset file", t, func() {
		ctx := context.Background()
		cfg := config.New()
		cfg.Variant = variant.Mood
		cfg.DatasetPath = filepath.Join("..", "internal", "domain", "dataset", "testdata", "mood.yaml")
		cfg.OutputPath = filepath.Join(t.TempDir(), "mood.png")
		cfg.Format = config.FormatPNG

		svc, err := newService(ctx, cfg, logger.Get())
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When rendering once", func() {
			err := renderOnce(ctx, cfg, svc, io.Discard)

			convey.Convey("Then a PNG file is written", func() {
				convey.So(err, convey.ShouldBeNil)
				data, err := os.ReadFile(cfg.OutputPath)
				convey.So(err, convey.ShouldBeNil)
				convey.So(data[:4], convey.ShouldResemble, []byte("\x89PNG"))
			})
		})

		convey.Convey("When the dataset does not fit the preset", func() {
			cfg.Variant = variant.Weather
			err := renderOnce(ctx, cfg, svc, io.Discard)

			convey.Convey("Then no file is created", func() {
				convey.So(err, convey.ShouldNotBeNil)
				_, statErr := os.Stat(cfg.OutputPath)
				convey.So(os.IsNotExist(statErr), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the dataset file is missing", func() {
			cfg.DatasetPath = "does-not-exist.yaml"
			err := renderOnce(ctx, cfg, svc, io.Discard)

			convey.Convey("Then the load error surfaces", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestNewMux(t *testing.T) {
	convey.Convey("Given the server mux", t, func() {
		ctx := context.Background()
		svc, err := newService(ctx, config.New(), logger.Get())
		convey.So(err, convey.ShouldBeNil)
		mux := newMux(ctx, svc)

		convey.Convey("Then the API and the OpenAPI document are routed", func() {
			for _, path := range []string{"/healthz", "/datasets", "/openapi.yaml"} {
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("Then a single update does not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}
