package s3client

import (
	"bytes"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"text2phenotype.com/reader/logger"
)

// Client reads task inputs and lexicons from the shared bucket and stores
// reader results there. Every key goes through Keys, so a deployment can
// keep the reader's objects under a prefix.
type Client struct {
	Keys       Keys
	bucketName string
	sessions   *sessionHolder
}

var clientLogger = logger.NewLogger("S3Client")
var sdkLogger = logger.NewLogger("S3-SDK")

func New() (*Client, error) {
	errLogger := clientLogger.With().Caller().Logger()
	env, err := readEnvironment(&errLogger)
	if err != nil {
		clientLogger.Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}
	sessions := newSessionHolder(func() (*session.Session, error) {
		return acquireSession(env)
	})
	if _, err := sessions.get(); err != nil {
		return nil, err
	}
	return &Client{
		Keys:       Keys{Prefix: env.KeyPrefix},
		bucketName: env.BucketName,
		sessions:   sessions,
	}, nil
}

// Download reads the whole object under key. A missing object is reported
// as ErrNotFound.
func (client *Client) Download(key string) ([]byte, error) {
	var data []byte
	err := client.do("download", key, func(sess *session.Session, fullKey string) error {
		buf, err := client.download(sess, fullKey)
		data = buf
		return err
	})
	return data, err
}

// Upload stores data under key.
func (client *Client) Upload(key string, data []byte) error {
	return client.do("upload", key, func(sess *session.Session, fullKey string) error {
		return client.upload(sess, fullKey, data)
	})
}

// DownloadTaskInput reads the sentence and questions of a queued task.
func (client *Client) DownloadTaskInput(inputKey string) ([]byte, error) {
	return client.Download(inputKey)
}

// UploadResults stores the response of one task and returns the key it was
// written under.
func (client *Client) UploadResults(jobID, redisKey string, response string) (string, error) {
	key := ResultsKey(jobID, redisKey)
	if err := client.Upload(key, []byte(response)); err != nil {
		return "", err
	}
	return key, nil
}

func (client *Client) Close() {
	client.sessions.drop()
	clientLogger.Info().Msg("Closing client")
}

// do runs fn with the current session and retries it once on a fresh
// session. Missing objects are not retried.
func (client *Client) do(op string, key string, fn func(sess *session.Session, fullKey string) error) error {
	fullKey, err := client.Keys.Object(key)
	if err != nil {
		return &ObjectError{Op: op, Key: key, Err: err}
	}
	sess, err := client.sessions.get()
	if err != nil {
		return &ObjectError{Op: op, Key: fullKey, Err: err}
	}
	err = classify(fn(sess, fullKey))
	if err == nil || isNotFound(err) {
		return wrapObjectError(op, fullKey, err)
	}
	clientLogger.Error().Err(err).Str("key", fullKey).Msg("Caught error while using S3 session, trying to refresh it")
	if sess, err = client.sessions.refresh(sess); err != nil {
		return &ObjectError{Op: op, Key: fullKey, Err: err}
	}
	return wrapObjectError(op, fullKey, classify(fn(sess, fullKey)))
}

func (client *Client) upload(sess *session.Session, key string, data []byte) error {
	objectLogger := clientLogger.With().
		Str("key", key).
		Str("bucket", client.bucketName).Logger()
	sdkLog := sdkLogger.With().Str("key", key).Logger()

	uploader := s3manager.NewUploader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))
	objectLogger.Debug().Int("bytes", len(data)).Msg("Uploading object")
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(client.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}

func (client *Client) download(sess *session.Session, key string) ([]byte, error) {
	objectLogger := clientLogger.With().
		Str("key", key).
		Str("bucket", client.bucketName).Logger()
	sdkLog := sdkLogger.With().Str("key", key).Logger()

	downloader := s3manager.NewDownloader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))
	buf := aws.NewWriteAtBuffer([]byte{})
	size, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(client.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		objectLogger.Error().Err(err).Msg("Failed to download object")
		return nil, err
	}
	objectLogger.Debug().Int64("bytes", size).Msg("Downloaded object")
	return buf.Bytes(), nil
}
