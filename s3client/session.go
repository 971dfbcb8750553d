package s3client

import (
	"errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
	"sync"
)

// sessionHolder shares one session between concurrent transfers. A transfer
// that fails on a session asks for a refresh, and only the first such
// request for that session creates a new one.
type sessionHolder struct {
	mu      sync.Mutex
	curr    *session.Session
	acquire func() (*session.Session, error)
}

func newSessionHolder(acquire func() (*session.Session, error)) *sessionHolder {
	return &sessionHolder{acquire: acquire}
}

func (holder *sessionHolder) get() (*session.Session, error) {
	holder.mu.Lock()
	defer holder.mu.Unlock()
	if holder.curr != nil {
		return holder.curr, nil
	}
	return holder.renew()
}

func (holder *sessionHolder) refresh(failed *session.Session) (*session.Session, error) {
	holder.mu.Lock()
	defer holder.mu.Unlock()
	if holder.curr != nil && holder.curr != failed {
		return holder.curr, nil
	}
	sess, err := holder.renew()
	if err == nil {
		clientLogger.Info().Msg("Successfully refreshed session")
	}
	return sess, err
}

func (holder *sessionHolder) drop() {
	holder.mu.Lock()
	holder.curr = nil
	holder.mu.Unlock()
}

func (holder *sessionHolder) renew() (*session.Session, error) {
	sess, err := holder.acquire()
	if err != nil {
		holder.curr = nil
		return nil, errors.Join(ErrNoSession, err)
	}
	if sess == nil {
		holder.curr = nil
		return nil, ErrNoSession
	}
	holder.curr = sess
	return sess, nil
}

// acquireSession prefers the instance role and falls back to the static
// credentials from the environment.
func acquireSession(env EnvironmentConfig) (*session.Session, error) {
	sess, err := session.NewSession(instanceConfig(env))
	if err == nil {
		if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err == nil {
			clientLogger.Info().Msg("S3 session successfully initialized using EC2")
			return sess, nil
		}
	}
	clientLogger.Info().Msg("Could not initialize S3 session using EC2, trying env credentials")

	cfg, err := staticConfig(env)
	if err != nil {
		clientLogger.Error().Err(err).Msg("Error with credentials from environment")
		return nil, err
	}
	if sess, err = session.NewSession(cfg); err != nil {
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return nil, err
	}
	if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err != nil {
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return nil, err
	}
	clientLogger.Info().Msg("S3 session successfully initialized using env credentials")
	return sess, nil
}

func instanceConfig(env EnvironmentConfig) *aws.Config {
	return aws.NewConfig().
		WithRegion(env.Region).
		WithMaxRetries(4).
		WithLogLevel(aws.LogDebug)
}

// staticConfig also points the client at a local endpoint in the dev
// environment.
func staticConfig(env EnvironmentConfig) (*aws.Config, error) {
	creds := credentials.NewStaticCredentials(env.AccessKeyID, env.AccessKey, "")
	if _, err := creds.Get(); err != nil {
		return nil, err
	}
	cfg := instanceConfig(env).WithCredentials(creds)
	if env.T2PEnv == "dev" && env.AwsEndpoint != "" {
		cfg = cfg.WithEndpoint(env.AwsEndpoint).WithS3ForcePathStyle(true)
	}
	return cfg, nil
}
