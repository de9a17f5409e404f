// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"storefront/internal/errors"

	gfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client of the Firebase project
func New(params Params) (*gfirestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// session routes document access through a transaction when one is active.
// Outside a transaction it talks to the client directly.
type session struct {
	client *gfirestore.Client
	tx     *gfirestore.Transaction
}

func (s session) get(ctx context.Context, ref *gfirestore.DocumentRef) (*gfirestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s session) query(ctx context.Context, q gfirestore.Query) ([]*gfirestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Documents(q).GetAll()
	}

	return q.Documents(ctx).GetAll()
}

func (s session) set(ctx context.Context, ref *gfirestore.DocumentRef, data any, opts ...gfirestore.SetOption) error {
	if s.tx != nil {
		return s.tx.Set(ref, data, opts...)
	}
	_, err := ref.Set(ctx, data, opts...)

	return err
}

func (s session) update(ctx context.Context, ref *gfirestore.DocumentRef, updates []gfirestore.Update) error {
	if s.tx != nil {
		return s.tx.Update(ref, updates)
	}
	_, err := ref.Update(ctx, updates)

	return err
}

func (s session) delete(ctx context.Context, ref *gfirestore.DocumentRef, preconds ...gfirestore.Precondition) error {
	if s.tx != nil {
		return s.tx.Delete(ref, preconds...)
	}
	_, err := ref.Delete(ctx, preconds...)

	return err
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}
