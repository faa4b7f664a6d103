package services

import (
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
)

// readOnlyProductID is the sentinel clients send to fetch the current set
// through the toggle endpoint without changing it.
const readOnlyProductID = -1

// InteractionService manages the favorites and saved-items sets.
type InteractionService struct {
	favorites *repositories.ToggleRepository
	saved     *repositories.ToggleRepository
}

func NewInteractionService(favorites, saved *repositories.ToggleRepository) *InteractionService {
	return &InteractionService{favorites: favorites, saved: saved}
}

// Favorites returns the user's favorite product ids.
func (s *InteractionService) Favorites(userID string) ([]int, error) {
	return s.favorites.Members(userID)
}

// Saved returns the user's saved product ids.
func (s *InteractionService) Saved(userID string) ([]int, error) {
	return s.saved.Members(userID)
}

// ToggleFavorite flips a product in the user's favorites and returns the
// updated set. productID -1 reads the set without mutating.
func (s *InteractionService) ToggleFavorite(userID string, productID int) ([]int, error) {
	return toggle(s.favorites, userID, productID)
}

// ToggleSaved flips a product in the user's saved items and returns the
// updated set. productID -1 reads the set without mutating.
func (s *InteractionService) ToggleSaved(userID string, productID int) ([]int, error) {
	return toggle(s.saved, userID, productID)
}

func toggle(repo *repositories.ToggleRepository, userID string, productID int) ([]int, error) {
	if productID == readOnlyProductID {
		return repo.Members(userID)
	}
	return repo.Toggle(userID, productID)
}
