package model

// ItemModel is the Firestore shape of 'businesses/{businessId}/items/{itemId}'.
// Price is whole currency units; older clients stored it as a numeric string.
type ItemModel struct {
	Name           string `firestore:"name"`
	Description    string `firestore:"description"`
	Price          any    `firestore:"price"`
	ImageURL       string `firestore:"imageUrl"`
	RequireAddress bool   `firestore:"requireAddress"`
}
