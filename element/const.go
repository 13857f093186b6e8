package element

// MinDet is the minimum |det J| accepted before a Jacobian is treated as
// singular (InvalidElement).
const MinDet = 1.0e-14
