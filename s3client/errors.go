package s3client

import (
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
)

var (
	ErrNotFound  = errors.New("object not found")
	ErrEmptyKey  = errors.New("object key is empty")
	ErrNoSession = errors.New("no S3 session available")
)

// ObjectError reports which operation failed on which key.
type ObjectError struct {
	Op  string
	Key string
	Err error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("s3 %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}

type notFoundError struct {
	cause awserr.Error
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.cause.Message())
}

func (e notFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e notFoundError) Unwrap() error {
	return e.cause
}

// classify turns the SDK's missing object and bucket codes into ErrNotFound.
func classify(err error) error {
	var aerr awserr.Error
	if err == nil || !errors.As(err, &aerr) {
		return err
	}
	switch aerr.Code() {
	case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
		return notFoundError{cause: aerr}
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func wrapObjectError(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &ObjectError{Op: op, Key: key, Err: err}
}
