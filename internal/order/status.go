package order

type Status string

// Orders are created already confirmed; no other state is reachable yet.
const StatusConfirmed Status = "confirmed"
