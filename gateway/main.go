package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	gql "github.com/machinebox/graphql"
	"go.uber.org/zap"

	configs "github.com/coiled/coiled-examples/cli/configs"
	"github.com/coiled/coiled-examples/cli/errors"
)

const (
	CLI_SOURCE_HEADER = "cli"
)

type Gateway struct {
	cfg        *configs.Configs
	gqlClient  *gql.Client
	fileClient *gql.Client
	logger     *zap.Logger
}

// leveledLogger lets retryablehttp log through zap
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }

func GetHost(cfg *configs.Configs) string {
	return strings.TrimSuffix(cfg.GetServer(), "/")
}

func newHTTPClient(cfg *configs.Configs, logger *zap.Logger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.GetRetries()
	retryClient.Logger = leveledLogger{s: logger.Sugar()}
	return retryClient.StandardClient()
}

func New(cfg *configs.Configs, logger *zap.Logger) *Gateway {
	httpClient := newHTTPClient(cfg, logger)
	endpoint := fmt.Sprintf("%s/graphql", GetHost(cfg))

	gqlClient := gql.NewClient(endpoint, gql.WithHTTPClient(httpClient))
	fileClient := gql.NewClient(endpoint, gql.WithHTTPClient(httpClient), gql.UseMultipartForm())
	debug := func(s string) { logger.Debug(s, zap.String("endpoint", endpoint)) }
	gqlClient.Log = debug
	fileClient.Log = debug

	return &Gateway{
		cfg:        cfg,
		gqlClient:  gqlClient,
		fileClient: fileClient,
		logger:     logger,
	}
}

func (g *Gateway) authorizeWithToken(req *gql.Request, token string) {
	req.Header.Set("x-source", CLI_SOURCE_HEADER)
	req.Header.Set("x-request-id", uuid.New().String())
	req.Header.Set("Authorization", fmt.Sprintf("Token %s", token))
}

func (g *Gateway) authorize(req *gql.Request) error {
	user, err := g.cfg.GetUserConfigs()
	if err != nil {
		return errors.TokenNotSet
	}
	g.authorizeWithToken(req, user.Token)
	return nil
}

func (g *Gateway) run(ctx context.Context, client *gql.Client, req *gql.Request, resp interface{}) error {
	requestID := req.Header.Get("x-request-id")
	g.logger.Debug("graphql request", zap.String("request_id", requestID))
	err := client.Run(ctx, req, resp)
	if err != nil {
		g.logger.Debug("graphql request failed", zap.String("request_id", requestID), zap.Error(err))
	}
	return err
}

// IsNotFound reports whether the service rejected a request because the
// named resource does not exist
func IsNotFound(err error) bool {
	// TODO: Switch to error codes once the API returns extensions
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "not found")
}
