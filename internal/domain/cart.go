package domain

// CartLine выбранный товар с количеством
type CartLine struct {
	Product  Product
	Quantity int64
}

// Cart рабочая корзина формы создания счёта.
// На один товар приходится не больше одной строки; порядок строк —
// порядок выбора, не порядок каталога.
type Cart struct {
	lines []CartLine
}

// Select добавляет строку с количеством 1; повторный выбор того же товара — no-op
func (c *Cart) Select(p Product) {
	for _, l := range c.lines {
		if l.Product.ID == p.ID {
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// Remove удаляет строку по id товара; отсутствующий id — no-op
func (c *Cart) Remove(productID int64) {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity перезаписывает количество как есть, без проверки знака и величины
func (c *Cart) SetQuantity(productID, quantity int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Lines возвращает копию строк в порядке выбора
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len число строк в корзине
func (c *Cart) Len() int { return len(c.lines) }

// Total сумма price*quantity по всем строкам
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}
