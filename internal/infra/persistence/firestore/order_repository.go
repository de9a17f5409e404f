package firestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	gfirestore "cloud.google.com/go/firestore"
)

// orderRepository implements the domain.OrderRepository interface using Firestore.
type orderRepository struct {
	sess session
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *gfirestore.Client) repository.OrderRepository {
	return &orderRepository{sess: session{client: client}}
}

func (repo *orderRepository) collection(businessID string) *gfirestore.CollectionRef {
	return repo.sess.client.Collection(model.CollectionBusinesses).Doc(businessID).Collection(model.CollectionOrders)
}

// CreateOrder stores the order under a generated ID and writes the ID back onto the entity.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	ref := repo.collection(order.BusinessID).NewDoc()
	if err := repo.sess.set(ctx, ref, fromOrderDomain(order)); err != nil {
		return errors.Wrap(err, "failed to create order")
	}
	order.ID = ref.ID

	return nil
}

// FindOrderByID retrieves an order of a business.
func (repo *orderRepository) FindOrderByID(ctx context.Context, businessID, orderID string) (*entity.Order, error) {
	snap, err := repo.sess.get(ctx, repo.collection(businessID).Doc(orderID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	var orderM model.OrderModel
	if err := snap.DataTo(&orderM); err != nil {
		return nil, errors.Wrap(err, "failed to decode order")
	}

	return toOrderDomain(businessID, snap.Ref.ID, &orderM), nil
}

// ListOrders returns the orders of a business, newest first.
// Filtering by status together with the ordering needs a composite index on (status, createdAt).
func (repo *orderRepository) ListOrders(ctx context.Context, businessID string, status *entity.OrderStatus) ([]*entity.Order, error) {
	q := repo.collection(businessID).Query
	if status != nil {
		q = q.Where(model.FieldStatus, "==", string(*status))
	}
	q = q.OrderBy(model.FieldCreatedAt, gfirestore.Desc)

	snaps, err := repo.sess.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(snaps))
	for _, snap := range snaps {
		var orderM model.OrderModel
		if err := snap.DataTo(&orderM); err != nil {
			return nil, errors.Wrapf(err, "failed to decode order %s", snap.Ref.ID)
		}
		orders = append(orders, toOrderDomain(businessID, snap.Ref.ID, &orderM))
	}

	return orders, nil
}

// UpdateOrderStatus merge-writes the order status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, businessID, orderID string, status entity.OrderStatus) error {
	return repo.merge(ctx, businessID, orderID, map[string]any{
		model.FieldStatus: string(status),
	}, "failed to update order status")
}

// MarkOrderPaid records the checkout session and moves the order to paid.
func (repo *orderRepository) MarkOrderPaid(ctx context.Context, businessID, orderID, sessionID string) error {
	return repo.merge(ctx, businessID, orderID, map[string]any{
		model.FieldStatus:          string(entity.OrderStatusPaid),
		model.FieldStripeSessionID: sessionID,
		model.FieldPaidAt:          gfirestore.ServerTimestamp,
	}, "failed to mark order paid")
}

// AttachSession records the checkout session on an order that already moved past paid.
func (repo *orderRepository) AttachSession(ctx context.Context, businessID, orderID, sessionID string) error {
	return repo.merge(ctx, businessID, orderID, map[string]any{
		model.FieldStripeSessionID: sessionID,
		model.FieldPaidAt:          gfirestore.ServerTimestamp,
	}, "failed to attach checkout session")
}

// DeleteOrder removes an order; a missing order is reported as not found.
func (repo *orderRepository) DeleteOrder(ctx context.Context, businessID, orderID string) error {
	err := repo.sess.delete(ctx, repo.collection(businessID).Doc(orderID), gfirestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

func (repo *orderRepository) merge(ctx context.Context, businessID, orderID string, fields map[string]any, msg string) error {
	err := repo.sess.set(ctx, repo.collection(businessID).Doc(orderID), orderPatch(fields), gfirestore.MergeAll)

	return errors.Wrap(err, msg)
}
