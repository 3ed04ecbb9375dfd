package equivs

import (
	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/rewrite"
)

func pv(name string) expr.Expression { return expr.PatternVar{Name: name} }

var (
	bot = expr.Contradiction{}
	top = expr.Not{Operand: expr.Contradiction{}}
)

func assoc(op expr.Op, ops ...expr.Expression) expr.Expression {
	return expr.Associative{Op: op, Operands: ops}
}

// catalog holds every Boolean, conditional, and quantifier equivalence rule,
// keyed by its serialized name (the same names internal/rules' catalog is
// keyed by).
var catalog = map[string]Equivalence{
	// --- Boolean equivalence family ---

	"ASSOCIATION": {
		Name: "ASSOCIATION", Strategy: ByNormalize,
		Normalize: expr.CombineAssociativeOps,
	},
	"COMMUTATION": {
		Name: "COMMUTATION", Strategy: ByNormalize,
		Normalize: func(e expr.Expression) expr.Expression {
			return expr.SortCommutativeOps(expr.CombineAssociativeOps(e))
		},
	},
	"IDEMPOTENCE": {
		Name: "IDEMPOTENCE", Strategy: ByNormalize,
		Normalize: expr.NormalizeIdempotence,
	},
	"DE_MORGAN": {
		Name: "DE_MORGAN", Strategy: ByNormalize,
		Normalize: expr.NormalizeDeMorgans,
	},
	"DOUBLENEGATION_EQUIV": {
		Name: "DOUBLENEGATION_EQUIV", Strategy: ByNormalize,
		Normalize: expr.NormalizeDoubleNegation,
	},
	"DISTRIBUTION": {
		Name: "DISTRIBUTION", Commutative: true, Strategy: ByReduceNonConfluent,
		Rules: rewrite.RuleSet{
			{Name: "and-over-or", LHS: assoc(expr.And, pv("A"), assoc(expr.Or, pv("B"), pv("C"))),
				RHS: assoc(expr.Or, assoc(expr.And, pv("A"), pv("B")), assoc(expr.And, pv("A"), pv("C")))},
			{Name: "or-over-and", LHS: assoc(expr.Or, pv("A"), assoc(expr.And, pv("B"), pv("C"))),
				RHS: assoc(expr.And, assoc(expr.Or, pv("A"), pv("B")), assoc(expr.Or, pv("A"), pv("C")))},
		},
	},
	"COMPLEMENT": {
		Name: "COMPLEMENT", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "and-complement", LHS: assoc(expr.And, pv("A"), expr.Not{Operand: pv("A")}), RHS: bot},
			{Name: "or-complement", LHS: assoc(expr.Or, pv("A"), expr.Not{Operand: pv("A")}), RHS: top},
		},
	},
	"IDENTITY": {
		Name: "IDENTITY", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "and-identity", LHS: assoc(expr.And, pv("A"), top), RHS: pv("A")},
			{Name: "or-identity", LHS: assoc(expr.Or, pv("A"), bot), RHS: pv("A")},
		},
	},
	"ANNIHILATION": {
		Name: "ANNIHILATION", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "and-annihilation", LHS: assoc(expr.And, pv("A"), bot), RHS: bot},
			{Name: "or-annihilation", LHS: assoc(expr.Or, pv("A"), top), RHS: top},
		},
	},
	"INVERSE": {
		Name: "INVERSE", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "not-top", LHS: expr.Not{Operand: top}, RHS: bot},
			{Name: "not-bot", LHS: expr.Not{Operand: bot}, RHS: top},
		},
	},
	"ABSORPTION": {
		Name: "ABSORPTION", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "and-absorbs-or", LHS: assoc(expr.And, pv("A"), assoc(expr.Or, pv("A"), pv("B"))), RHS: pv("A")},
			{Name: "or-absorbs-and", LHS: assoc(expr.Or, pv("A"), assoc(expr.And, pv("A"), pv("B"))), RHS: pv("A")},
		},
	},
	"REDUCTION": {
		Name: "REDUCTION", Commutative: true, Strategy: ByReduceNonConfluent,
		Rules: rewrite.RuleSet{
			{Name: "and-reduction", LHS: assoc(expr.And, pv("A"), assoc(expr.Or, expr.Not{Operand: pv("A")}, pv("B"))),
				RHS: assoc(expr.And, pv("A"), pv("B"))},
			{Name: "or-reduction", LHS: assoc(expr.Or, pv("A"), assoc(expr.And, expr.Not{Operand: pv("A")}, pv("B"))),
				RHS: assoc(expr.Or, pv("A"), pv("B"))},
		},
	},
	"ADJACENCY": {
		Name: "ADJACENCY", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "or-adjacency", LHS: assoc(expr.Or, assoc(expr.And, pv("A"), pv("B")), assoc(expr.And, pv("A"), expr.Not{Operand: pv("B")})), RHS: pv("A")},
			{Name: "and-adjacency", LHS: assoc(expr.And, assoc(expr.Or, pv("A"), pv("B")), assoc(expr.Or, pv("A"), expr.Not{Operand: pv("B")})), RHS: pv("A")},
		},
	},

	// --- Conditional equivalence family ---

	"CONDITIONAL_COMPLEMENT": {
		Name: "CONDITIONAL_COMPLEMENT", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "false-consequent", LHS: expr.Implication{Left: pv("A"), Right: bot}, RHS: expr.Not{Operand: pv("A")}},
		},
	},
	"CONDITIONAL_IDENTITY": {
		Name: "CONDITIONAL_IDENTITY", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "true-antecedent", LHS: expr.Implication{Left: top, Right: pv("A")}, RHS: pv("A")},
		},
	},
	"CONDITIONAL_ANNIHILATION": {
		Name: "CONDITIONAL_ANNIHILATION", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "true-consequent", LHS: expr.Implication{Left: pv("A"), Right: top}, RHS: top},
			{Name: "false-antecedent", LHS: expr.Implication{Left: bot, Right: pv("A")}, RHS: top},
		},
	},
	"IMPLICATION": {
		Name: "IMPLICATION", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "material-implication", LHS: expr.Implication{Left: pv("A"), Right: pv("B")},
				RHS: assoc(expr.Or, expr.Not{Operand: pv("A")}, pv("B"))},
		},
	},
	"BI_IMPLICATION": {
		Name: "BI_IMPLICATION", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "biconditional-as-conjunction", LHS: assoc(expr.Biconditional, pv("A"), pv("B")),
				RHS: assoc(expr.And, expr.Implication{Left: pv("A"), Right: pv("B")}, expr.Implication{Left: pv("B"), Right: pv("A")})},
		},
	},
	"CONTRAPOSITION": {
		Name: "CONTRAPOSITION", Strategy: ByReduceNonConfluent,
		Rules: rewrite.RuleSet{
			{Name: "contrapositive", LHS: expr.Implication{Left: pv("A"), Right: pv("B")},
				RHS: expr.Implication{Left: expr.Not{Operand: pv("B")}, Right: expr.Not{Operand: pv("A")}}},
		},
	},
	"CURRYING": {
		Name: "CURRYING", Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "curry", LHS: expr.Implication{Left: assoc(expr.And, pv("A"), pv("B")), Right: pv("C")},
				RHS: expr.Implication{Left: pv("A"), Right: expr.Implication{Left: pv("B"), Right: pv("C")}}},
		},
	},
	"CONDITIONAL_DISTRIBUTION": {
		Name: "CONDITIONAL_DISTRIBUTION", Commutative: true, Strategy: ByReduceNonConfluent,
		Rules: rewrite.RuleSet{
			{Name: "distribute-and-consequent", LHS: expr.Implication{Left: pv("A"), Right: assoc(expr.And, pv("B"), pv("C"))},
				RHS: assoc(expr.And, expr.Implication{Left: pv("A"), Right: pv("B")}, expr.Implication{Left: pv("A"), Right: pv("C")})},
			{Name: "distribute-or-consequent", LHS: expr.Implication{Left: pv("A"), Right: assoc(expr.Or, pv("B"), pv("C"))},
				RHS: assoc(expr.Or, expr.Implication{Left: pv("A"), Right: pv("B")}, expr.Implication{Left: pv("A"), Right: pv("C")})},
			{Name: "distribute-or-antecedent", LHS: expr.Implication{Left: assoc(expr.Or, pv("A"), pv("B")), Right: pv("C")},
				RHS: assoc(expr.And, expr.Implication{Left: pv("A"), Right: pv("C")}, expr.Implication{Left: pv("B"), Right: pv("C")})},
		},
	},
	"CONDITIONAL_REDUCTION": {
		Name: "CONDITIONAL_REDUCTION", Commutative: true, Strategy: ByReduceNonConfluent,
		Rules: rewrite.RuleSet{
			{Name: "antecedent-in-consequent", LHS: expr.Implication{Left: pv("A"), Right: assoc(expr.And, pv("A"), pv("B"))},
				RHS: expr.Implication{Left: pv("A"), Right: pv("B")}},
		},
	},
	"KNIGHTS_AND_KNAVES": {
		Name: "KNIGHTS_AND_KNAVES", Commutative: true, Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "self-contradicting-biconditional", LHS: assoc(expr.Biconditional, pv("A"), expr.Not{Operand: pv("A")}), RHS: bot},
		},
	},
	"CONDITIONAL_IDEMPOTENCE": {
		Name: "CONDITIONAL_IDEMPOTENCE", Commutative: true, Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "self-implication", LHS: expr.Implication{Left: pv("A"), Right: pv("A")}, RHS: top},
		},
	},
	"BICONDITIONAL_NEGATION": {
		Name: "BICONDITIONAL_NEGATION", Commutative: true, Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "negate-one-side", LHS: expr.Not{Operand: assoc(expr.Biconditional, pv("A"), pv("B"))},
				RHS: assoc(expr.Biconditional, expr.Not{Operand: pv("A")}, pv("B"))},
		},
	},
	"BICONDITIONAL_SUBSTITUTION": {
		Name: "BICONDITIONAL_SUBSTITUTION", Commutative: true, Strategy: ByReduceConfluent,
		Rules: rewrite.RuleSet{
			{Name: "biconditional-symmetry", LHS: assoc(expr.Biconditional, pv("A"), pv("B")),
				RHS: assoc(expr.Biconditional, pv("B"), pv("A"))},
		},
	},
	"ASYMMETRIC_TAUTOLOGY": {
		Name: "ASYMMETRIC_TAUTOLOGY", Unimplemented: true,
	},

	// --- Quantifier equivalence family ---

	"QUANTIFIER_NEGATION": {
		Name: "QUANTIFIER_NEGATION", Strategy: ByNormalize,
		Normalize: expr.NegateQuantifiers,
	},
	"NULL_QUANTIFICATION": {
		Name: "NULL_QUANTIFICATION", Strategy: ByNormalize,
		Normalize: expr.NormalizeNullQuantifiers,
	},
	"REPLACING_BOUND_VARS": {
		Name: "REPLACING_BOUND_VARS", Strategy: ByNormalize,
		Normalize: expr.ReplacingBoundVars,
	},
	"SWAPPING_QUANTIFIERS": {
		Name: "SWAPPING_QUANTIFIERS", Strategy: ByNormalize,
		Normalize: expr.SwapQuantifiers,
	},
	"ARISTOTELEAN_SQUARE": {
		Name: "ARISTOTELEAN_SQUARE", Strategy: ByNormalize,
		Normalize: expr.AristoteleanSquare,
	},
	"QUANTIFIER_DISTRIBUTION": {
		Name: "QUANTIFIER_DISTRIBUTION", Strategy: ByNormalize,
		Normalize: expr.QuantifierDistribution,
	},
	"PRENEX_LAWS": {
		Name: "PRENEX_LAWS", Strategy: ByNormalize,
		Normalize: expr.NormalizePrenexLaws,
	},
}
