package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedEvent is an error thrown when a bucket notification cannot be read
var ErrMalformedEvent = errors.New("malformed bucket notification")

// MinIOEvent represents a MinIO bucket notification
type MinIOEvent struct {
	EventName string `json:"EventName"`
	Key       string `json:"Key"`
	Records   []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key         string `json:"key"`
				Size        int64  `json:"size"`
				ETag        string `json:"eTag"`
				ContentType string `json:"contentType"`
			} `json:"object"`
		} `json:"s3"`
		EventTime string `json:"eventTime"`
	} `json:"Records"`
}

// EventType is a type that represents the type of an event
type EventType string

const (
	EventTypeObjectCreated EventType = "ObjectCreated"
	EventTypeUnknown       EventType = "Unknown"
)

// StorageNotification is a struct that represents a storage object notification
type StorageNotification struct {
	EventName   string
	EventType   EventType
	StorageName string
	ObjectKey   string
	ObjectSize  int64
	ContentType string
}

// Notification reads the first record of the event. Object keys arrive URL encoded.
func (e MinIOEvent) Notification() (StorageNotification, error) {
	if len(e.Records) == 0 {
		return StorageNotification{}, fmt.Errorf("%w: no records", ErrMalformedEvent)
	}
	record := e.Records[0]

	key, err := url.QueryUnescape(record.S3.Object.Key)
	if err != nil {
		return StorageNotification{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	eventType := EventTypeUnknown
	if strings.HasPrefix(record.EventName, "s3:ObjectCreated:") {
		eventType = EventTypeObjectCreated
	}

	return StorageNotification{
		EventName:   record.EventName,
		EventType:   eventType,
		StorageName: record.S3.Bucket.Name,
		ObjectKey:   key,
		ObjectSize:  record.S3.Object.Size,
		ContentType: record.S3.Object.ContentType,
	}, nil
}
