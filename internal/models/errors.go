package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("a resource ID you specified does not identify an existing resource")
)

var (
	ErrSiteNameNotUnique   = errors.New("the site name must be unique for the organization")
	ErrWorkerNameNotUnique = errors.New("the worker name must be unique for the organization")
)

var (
	ErrAmountNegative              = errors.New("amounts must not be negative")
	ErrHoursNegative               = errors.New("hours must not be negative")
	ErrRateNegative                = errors.New("rates must not be negative")
	ErrTransactionTypeInvalid      = errors.New("the transaction type must be one of 'invoice' or 'expense'")
	ErrPaymentTypeInvalid          = errors.New("the payment type must be one of 'hourly' or 'fixed'")
	ErrWorkerOrganizationMismatch  = errors.New("the worker must belong to the organization of the site")
	ErrOrganizationLocaleMalformed = errors.New("the locale must be a valid BCP 47 language tag")
)
