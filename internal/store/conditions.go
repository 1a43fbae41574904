package store

// ---------------- Operadores ----------------

type Operator string

const (
	OpEq   Operator = "="
	OpNeq  Operator = "!="
	OpGt   Operator = ">"
	OpGte  Operator = ">="
	OpLt   Operator = "<"
	OpLte  Operator = "<="
	OpLike Operator = "LIKE"
	OpIn   Operator = "IN"
)

// ---------------- Condition ----------------

// Condition describe una condición neutral de filtrado sobre una columna.
// Una lista de Conditions se combina siempre con AND.
type Condition struct {
	Column string
	Op     Operator
	Value  any
}

// Order indica columna y dirección de ordenamiento.
type Order struct {
	Column string
	Desc   bool
}

// ---------------- Constructores ----------------

func Eq(column string, value any) Condition {
	return Condition{Column: column, Op: OpEq, Value: value}
}

func Neq(column string, value any) Condition {
	return Condition{Column: column, Op: OpNeq, Value: value}
}

func Gt(column string, value any) Condition {
	return Condition{Column: column, Op: OpGt, Value: value}
}

func Gte(column string, value any) Condition {
	return Condition{Column: column, Op: OpGte, Value: value}
}

func Lt(column string, value any) Condition {
	return Condition{Column: column, Op: OpLt, Value: value}
}

func Lte(column string, value any) Condition {
	return Condition{Column: column, Op: OpLte, Value: value}
}

func Like(column string, value string) Condition {
	return Condition{Column: column, Op: OpLike, Value: value}
}

// In construye una condición IN. El builder expande un placeholder por valor.
func In(column string, values ...any) Condition {
	return Condition{Column: column, Op: OpIn, Value: values}
}

// Asc y Desc son azúcar para OrderBy.
func Asc(column string) Order  { return Order{Column: column} }
func Desc(column string) Order { return Order{Column: column, Desc: true} }
