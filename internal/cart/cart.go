// Package cart implémente le panier côté client : une collection éphémère
// en mémoire, ordonnée par insertion, jamais persistée avant la soumission
// de la commande. Aucun singleton : chaque session UI possède son instance.
package cart

// Item est une entrée du panier. Quantity est toujours ≥ 1 :
// une quantité nulle ou négative équivaut à une suppression.
type Item struct {
	FoodID   string
	Name     string
	Price    float64
	Image    string
	Quantity int
}

type Cart struct {
	items []Item // l'ordre d'insertion est préservé
}

func New() *Cart {
	return &Cart{}
}

// FromItems construit un panier normalisé à partir d'une séquence brute :
// les doublons de FoodID sont fusionnés, les quantités ≤ 0 ignorées.
// Utilisé côté serveur pour recalculer le total d'une commande soumise.
func FromItems(items []Item) *Cart {
	c := New()
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if existing := c.find(item.FoodID); existing != nil {
			existing.Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

// Add ajoute un plat. S'il est déjà présent, sa quantité est incrémentée de 1.
func (c *Cart) Add(food Item) {
	if existing := c.find(food.FoodID); existing != nil {
		existing.Quantity++
		return
	}
	food.Quantity = 1
	c.items = append(c.items, food)
}

// SetQuantity fixe la quantité d'un plat. n ≤ 0 supprime l'entrée.
func (c *Cart) SetQuantity(foodID string, n int) {
	if n <= 0 {
		c.Remove(foodID)
		return
	}
	if existing := c.find(foodID); existing != nil {
		existing.Quantity = n
	}
}

// Remove supprime un plat du panier. No-op s'il est absent.
func (c *Cart) Remove(foodID string) {
	for i := range c.items {
		if c.items[i].FoodID == foodID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear vide le panier.
func (c *Cart) Clear() {
	c.items = nil
}

// Items retourne une copie des entrées, dans l'ordre d'insertion.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// TotalItems et TotalPrice sont dérivés à la demande, jamais stockés :
// ils ne peuvent pas se désynchroniser des entrées.

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) find(foodID string) *Item {
	for i := range c.items {
		if c.items[i].FoodID == foodID {
			return &c.items[i]
		}
	}
	return nil
}
