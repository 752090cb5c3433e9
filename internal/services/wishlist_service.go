package services

import "morefix/internal/repos"

type WishlistService struct {
	Repo *repos.WishlistRepo
}

func NewWishlistService(r *repos.WishlistRepo) *WishlistService { return &WishlistService{Repo: r} }

// Toggle flips membership of productID in the user's set and writes the
// full new set back (overwrite, not an incremental patch). Returns the
// new membership state. Toggling twice restores the original set.
func (s *WishlistService) Toggle(userID, productID string) (added bool, err error) {
	ids, err := s.Repo.Get(userID)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == productID {
			added = true // present: drop it
			continue
		}
		next = append(next, id)
	}
	if added {
		added = false
	} else {
		next = append(next, productID)
		added = true
	}

	return added, s.Repo.Replace(userID, next)
}

func (s *WishlistService) IDs(userID string) ([]string, error) {
	return s.Repo.Get(userID)
}

func (s *WishlistService) List(userID string) ([]repos.WishlistRow, error) {
	return s.Repo.ListDetailed(userID)
}
