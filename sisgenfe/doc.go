// Package sisgenfe implementa o cliente do webservice de NFS-e Sisgenfe
// (https://nota.systemainformatica.com.br).
//
// Este pacote implementa:
//   - Login (token Bearer)
//   - Cadastro e consulta de tomadores
//   - Cadastro, consulta, correção e cancelamento de NFS-e
//   - Consulta de CNAEs, municípios e unidades de medida
//
// # Autenticação
//
// O login devolve o token como texto puro. Authenticate já acrescenta o
// prefixo "Bearer "; guarde o valor e reutilize-o em New. O pacote não
// controla expiração: se uma chamada falhar com IsUnauthorized, autentique
// novamente.
//
// # Início Rápido
//
//	token, err := sisgenfe.Authenticate(ctx, sisgenfe.Credentials{
//	    App:       "meu-app",
//	    Prestador: "12345",
//	    Username:  "usuario",
//	    Password:  "senha",
//	})
//
//	client, err := sisgenfe.New(token)
//	cnaes, err := client.GetCnaes(ctx)
//
// Consultas aceitam limit/offset opcionais:
//
//	notas, err := client.SearchNfs(ctx, "00042", sisgenfe.WithLimit(50), sisgenfe.WithOffset(50))
//
// # Respostas
//
// As respostas são JSON decodificado sem esquema local
// (map[string]interface{} ou []interface{}).
//
// # Tratamento de Erros
//
// Há duas categorias de erro:
//
//	if sisgenfe.IsTransport(err) {
//	    // Falha de rede ou status HTTP fora de 2xx (*TransportError ou *APIError)
//	}
//	if sisgenfe.IsDecode(err) {
//	    // Resposta não era JSON válido (*DecodeError)
//	}
//
// Não há retry nem cache: cada método faz exatamente uma requisição.
package sisgenfe
