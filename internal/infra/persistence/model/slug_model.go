package model

import "time"

// SlugModel is the Firestore shape of 'slugs/{slug}'.
type SlugModel struct {
	BusinessID string    `firestore:"businessId"`
	CreatedAt  time.Time `firestore:"createdAt"`
}
