package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client delivers push notifications through Firebase Cloud Messaging. It
// implements messaging.Pusher.
type Client struct {
	client *messaging.Client
}

// NewClient builds the FCM client from a service-account credentials file.
// An empty path defers to the process's application default credentials;
// the server only constructs the client when a file is configured, so a
// caller passing "" must guarantee ambient credentials exist.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) Push(ctx context.Context, token, title, body string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := c.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send push message: %w", err)
	}
	return nil
}
