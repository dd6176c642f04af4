// Package fcm sends multicast push notifications through Firebase Cloud
// Messaging. One logical notification fans out to every registered device
// token in a single provider call.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Payload is one logical notification addressed to a set of device tokens.
type Payload struct {
	Title    string
	Body     string
	DeepLink string
	Tokens   []string
}

// Result reports the per-token outcome of a multicast send. Invalid holds
// tokens the provider no longer recognizes; callers should prune them from
// their token store.
type Result struct {
	SuccessCount int
	FailureCount int
	Invalid      []string
}

// Client wraps the Firebase messaging client.
type Client struct {
	messaging *messaging.Client
}

// NewClient initializes the Firebase app from a service account credentials
// file and returns a messaging client.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	return &Client{messaging: mc}, nil
}

// Send dispatches the payload to all tokens in one multicast call. A non-nil
// error means the provider call itself failed and the whole send should be
// retried; individual token failures are reported through Result instead.
func (c *Client) Send(ctx context.Context, p Payload) (Result, error) {
	msg := &messaging.MulticastMessage{
		Tokens: p.Tokens,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: map[string]string{
			"deepLink": p.DeepLink,
		},
	}

	br, err := c.messaging.SendEachForMulticast(ctx, msg)
	if err != nil {
		return Result{}, fmt.Errorf("send multicast: %w", err)
	}

	res := Result{
		SuccessCount: br.SuccessCount,
		FailureCount: br.FailureCount,
	}

	for i, r := range br.Responses {
		if r.Error != nil && messaging.IsRegistrationTokenNotRegistered(r.Error) {
			res.Invalid = append(res.Invalid, p.Tokens[i])
		}
	}

	return res, nil
}
