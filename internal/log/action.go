package log

type Action = string

const (
	CreateCategory       Action = "CreateCategory"
	GetCategory                 = "GetCategory"
	ListCategories              = "ListCategories"
	GetCategoryBooks            = "GetCategoryBooks"
	CreateBook                  = "CreateBook"
	GetBook                     = "GetBook"
	ListBooks                   = "ListBooks"
	SearchBooks                 = "SearchBooks"
	UpdateBookStatus            = "UpdateBookStatus"
	UpdateBookCategories        = "UpdateBookCategories"
	BorrowBook                  = "BorrowBook"
	ReturnBook                  = "ReturnBook"
	GetRental                   = "GetRental"
	ListRentals                 = "ListRentals"
	ListOverdueRentals          = "ListOverdueRentals"
	ReconcileOverdue            = "ReconcileOverdue"
)
