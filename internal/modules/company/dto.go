package company

type ProvisionRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminName     string `json:"admin_name" binding:"required"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
}
