package sisgenfe

// BaseURL é a URL base do webservice Sisgenfe
const BaseURL = "https://nota.systemainformatica.com.br/api/"

// Endpoints relativos à BaseURL
const (
	PathLogin      = "login"
	PathTaker      = "tomador"
	PathTakerQuery = "tomador/query"
	PathNfs        = "nfs"
	PathNfsQuery   = "nfs/query"
	PathNfsCorrect = "nfs/corrige"
	PathNfsCancel  = "nfs/cancela"
	PathCnae       = "cnae"
	PathCnaeQuery  = "cnae/query"
	PathCityQuery  = "municipio/query"
	PathUnitQuery  = "unidade/query"
)

// Limites padrão das consultas
const (
	DefaultLimit     = 10
	DefaultUnitLimit = 1 // unidade/query retorna só a primeira unidade por padrão
)

const (
	bearerPrefix        = "Bearer "
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)
