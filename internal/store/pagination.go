package store

import "strconv"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// PageParams es la entrada de paginación ya normalizada.
type PageParams struct {
	Page  int
	Limit int
}

// Offset calcula el desplazamiento para LIMIT/OFFSET.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// normalize aplica los mismos límites a parámetros construidos a mano,
// para que un literal PageParams{Page: 0} se comporte igual que la entrada
// HTTP equivalente.
func (p PageParams) normalize() PageParams {
	if p.Page < defaultPage {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// PaginationParams normaliza page/limit tal como llegan de la query string.
// Nunca falla: entrada ausente o malformada cae en los valores por defecto
// (page 1, limit 10), page se fija a mínimo 1 y limit al rango [1, 100].
// El tope de limit acota el peor caso de tamaño de respuesta, decida lo que
// decida el llamador.
func PaginationParams(page, limit string) PageParams {
	p := PageParams{Page: defaultPage, Limit: defaultLimit}

	if n, err := strconv.Atoi(page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil {
		p.Limit = n
		if p.Limit > maxLimit {
			p.Limit = maxLimit
		}
		if p.Limit < 1 {
			p.Limit = 1
		}
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// Pagination es la metadata que acompaña a una página de resultados.
// Siempre es internamente consistente: TotalPages = ceil(Total/Limit),
// HasNext = Page < TotalPages y HasPrev = Page > 1.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination arma la metadata a partir del COUNT y los parámetros
// originales de la consulta.
func NewPagination(params PageParams, total int64) Pagination {
	params = params.normalize()
	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}
