package savings

// MinimumDeposit is the smallest principal a savings account may open with.
const MinimumDeposit = 500.0

// EarlyPenaltyRate is charged on the principal, not the accrued value,
// when withdrawing before maturity. Accrued interest is forfeited.
const EarlyPenaltyRate = 0.05

// loanTermFactor assumes a half-year interest term when sizing a loan
// against savings collateral.
const loanTermFactor = 0.5

// collateralGuard keeps rounding from pushing principal plus interest
// past the collateral value.
const collateralGuard = 1.0
