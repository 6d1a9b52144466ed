package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bom/internal/adapters/report"
	"go.trai.ch/bom/internal/app"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/bom/internal/core/ports/mocks"
	"go.trai.ch/bom/internal/engine/oracle"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	config *mocks.MockConfigLoader
	loader *mocks.MockDocumentLoader
	logger *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, *appMocks) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	m := &appMocks{
		config: mocks.NewMockConfigLoader(ctrl),
		loader: mocks.NewMockDocumentLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	application := app.New(m.config, m.loader, oracle.New(), report.NewEncoder(), m.logger).
		WithStreams(new(bytes.Buffer), new(bytes.Buffer))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() {}, nil
	}
	return provider, m
}

func singleCircuit() *domain.DocumentSet {
	docs := domain.NewDocumentSet()
	docs.Add(&domain.Document{
		Path: "/work/top.circ",
		Circuits: []domain.CircuitDefinition{{
			Name: "main",
			Elements: []domain.Element{&domain.Component{
				Library: "0",
				Type:    domain.NewInternedString("Transistor"),
			}},
		}},
	})
	return docs
}

func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		loadErr  error
		wantCode int
	}{
		{name: "priced", args: []string{"price", "top.circ", "main"}, wantCode: 0},
		{name: "circuit not found", args: []string{"price", "top.circ", "ghost"}, wantCode: 2},
		{name: "limit exceeded", args: []string{"price", "top.circ", "main", "-l", "1"}, wantCode: 3},
		{name: "limit respected", args: []string{"price", "top.circ", "main", "-l", "2"}, wantCode: 0},
		{
			name:     "parse failure",
			args:     []string{"price", "top.circ", "main"},
			loadErr:  zerr.Wrap(errors.New("EOF"), domain.ErrDocumentParseFailed.Error()),
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, m := newProvider(t)
			m.config.EXPECT().Load(".").Return(&domain.Settings{}, nil)
			if tt.loadErr != nil {
				m.loader.EXPECT().Load(gomock.Any(), "top.circ").Return(nil, tt.loadErr)
			} else {
				m.loader.EXPECT().Load(gomock.Any(), "top.circ").Return(singleCircuit(), nil)
			}
			if tt.wantCode != 0 {
				m.logger.EXPECT().Error(gomock.Any())
			}

			exitCode := run(context.Background(), tt.args, new(bytes.Buffer), provider)

			assert.Equal(t, tt.wantCode, exitCode)
		})
	}
}

func TestRun_UsageError(t *testing.T) {
	provider, m := newProvider(t)
	m.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"circuits"}, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}
