package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Admins() AdminRepository
	Products() ProductRepository
	Orders() OrderRepository
}
