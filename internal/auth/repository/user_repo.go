package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clubnatacion/swimclub-backend/internal/auth/domain"
)

const usersCollection = "users"

type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// GetByUID retrieves a user by Firebase UID (the document id).
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", uid, err)
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", uid, err)
	}
	user.UID = snap.Ref.ID

	return &user, nil
}

// Create writes a new user document keyed by UID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.client.Collection(usersCollection).Doc(user.UID).Create(ctx, user); err != nil {
		return fmt.Errorf("create user %s: %w", user.UID, err)
	}
	return nil
}

// UpdateRoleAndApproval sets role and approval in a single merge write.
func (r *UserRepository) UpdateRoleAndApproval(ctx context.Context, uid string, role domain.Role, approved bool) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
		{Path: "approved", Value: approved},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("update role for %s: %w", uid, err)
	}
	return nil
}

// UpdateProfile merges optional profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, uid string, fields map[string]interface{}) error {
	fields["updatedAt"] = firestore.ServerTimestamp

	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update profile for %s: %w", uid, err)
	}
	return nil
}

// TouchLastLogin updates the last login timestamp.
func (r *UserRepository) TouchLastLogin(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "lastLoginAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrUserNotFound
	}
	return err
}

// List returns every account, pending ones first in the caller's hands.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	iter := r.client.Collection(usersCollection).OrderBy("email", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var users []*domain.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		var user domain.User
		if err := snap.DataTo(&user); err != nil {
			return nil, fmt.Errorf("decode user %s: %w", snap.Ref.ID, err)
		}
		user.UID = snap.Ref.ID
		users = append(users, &user)
	}

	return users, nil
}
