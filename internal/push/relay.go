package push

import (
	"context"
	"errors"
	"fmt"
	"log"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// Notification is one browser notification: outbid, auction ending,
// auction won. Text arrives already localized.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Link  string            `json:"link,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// Relay forwards platform notifications to the user's browsers through
// FCM. Without credentials the relay stays disabled and every Notify
// is a no-op, so local setups run without a Firebase project.
type Relay struct {
	client   *messaging.Client
	registry *Registry
	errorLog *log.Logger
}

// NewRelay builds the FCM client from a service account file. An empty
// path returns a disabled relay.
func NewRelay(ctx context.Context, credentialsFile string, registry *Registry, errorLog *log.Logger) (*Relay, error) {
	relay := &Relay{registry: registry, errorLog: errorLog}
	if credentialsFile == "" {
		return relay, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging: %w", err)
	}
	relay.client = client
	return relay, nil
}

// Enabled reports whether FCM credentials were configured.
func (r *Relay) Enabled() bool {
	return r.client != nil
}

// Notify sends the notification to every browser the user registered.
// Tokens FCM reports as dead are removed from the registry. The last
// send error is returned, but one bad token never blocks the rest.
func (r *Relay) Notify(ctx context.Context, userID int, n Notification) error {
	if !r.Enabled() {
		return nil
	}

	tokens, err := r.registry.Tokens(ctx, userID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	var lastErr error
	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: n.Title,
				Body:  n.Body,
			},
			Data: n.Data,
			Webpush: &messaging.WebpushConfig{
				Headers: map[string]string{
					"Urgency": "high",
				},
				FCMOptions: &messaging.WebpushFCMOptions{
					Link: n.Link,
				},
			},
		}

		if _, err := r.client.Send(ctx, message); err != nil {
			if messaging.IsRegistrationTokenNotRegistered(err) {
				if rmErr := r.registry.Remove(ctx, userID, token); rmErr != nil {
					r.errorLog.Printf("prune dead push token: %v", rmErr)
				}
				continue
			}
			r.errorLog.Printf("push to user %d failed: %v", userID, err)
			lastErr = err
		}
	}
	return lastErr
}

// ErrDisabled is returned by handlers that require the relay when it
// was not configured.
var ErrDisabled = errors.New("push relay disabled")
