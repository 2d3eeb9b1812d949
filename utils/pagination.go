package utils

// PageOffset is the index of the first row of page, capped at total. Page
// numbers past the last page never overflow into a negative offset.
func PageOffset(page, limit, total int) int {
	if page < 1 || limit < 1 || total < 1 {
		return 0
	}
	if page-1 > total/limit {
		return total
	}
	if offset := (page - 1) * limit; offset < total {
		return offset
	}
	return total
}

func TotalPages(total, limit int) int {
	if limit < 1 || total < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
