package domain

import "github.com/google/uuid"

// The identifier types marshal as canonical UUID strings in JSON, river job
// arguments and URL parameters.

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id CustomerID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *CustomerID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id QueueJobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *QueueJobID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id PurchaseID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PurchaseID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
