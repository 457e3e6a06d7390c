package catalog

import (
	"fmt"

	"github.com/thermora/backend/internal/domain"
)

// fixtures are the fixed sensor points. Offsets fall by 0.3 °C per km from
// Praça da Sé, rounded to half degrees.
var fixtures = []domain.Location{
	{Lat: -23.5505, Lng: -46.6333, Name: "Sé", BaseTempOffset: 6.0, RouteID: "route-1"},
	{Lat: -23.5470, Lng: -46.6290, Name: "Parque Dom Pedro II", BaseTempOffset: 6.0, RouteID: "route-1"},
	{Lat: -23.5439, Lng: -46.6425, Name: "República", BaseTempOffset: 5.5, RouteID: "route-1"},
	{Lat: -23.5587, Lng: -46.6350, Name: "Liberdade", BaseTempOffset: 5.5, RouteID: "route-1"},
	{Lat: -23.5614, Lng: -46.6460, Name: "Bela Vista", BaseTempOffset: 5.5, RouteID: "route-1"},
	{Lat: -23.5531, Lng: -46.6601, Name: "Consolação", BaseTempOffset: 5.0, RouteID: "route-6"},
	{Lat: -23.5389, Lng: -46.6508, Name: "Santa Cecília", BaseTempOffset: 5.5, RouteID: "route-1"},
	{Lat: -23.5270, Lng: -46.6400, Name: "Bom Retiro", BaseTempOffset: 5.0, RouteID: "route-3"},
	{Lat: -23.5437, Lng: -46.6166, Name: "Brás", BaseTempOffset: 5.5, RouteID: "route-1"},
	{Lat: -23.5291, Lng: -46.6166, Name: "Pari", BaseTempOffset: 5.0, RouteID: "route-2"},
	{Lat: -23.5694, Lng: -46.6207, Name: "Cambuci", BaseTempOffset: 5.5, RouteID: "route-1"},
	{Lat: -23.5587, Lng: -46.5994, Name: "Mooca", BaseTempOffset: 5.0, RouteID: "route-10"},
	{Lat: -23.5721, Lng: -46.6327, Name: "Aclimação", BaseTempOffset: 5.5, RouteID: "route-1"},
	{Lat: -23.5891, Lng: -46.6346, Name: "Vila Mariana", BaseTempOffset: 4.5, RouteID: "route-8"},
	{Lat: -23.5757, Lng: -46.6430, Name: "Paraíso", BaseTempOffset: 5.0, RouteID: "route-7"},
	{Lat: -23.5700, Lng: -46.6620, Name: "Jardim Paulista", BaseTempOffset: 5.0, RouteID: "route-7"},
	{Lat: -23.5670, Lng: -46.7010, Name: "Pinheiros", BaseTempOffset: 4.0, RouteID: "route-6"},
	{Lat: -23.5534, Lng: -46.6907, Name: "Vila Madalena", BaseTempOffset: 4.0, RouteID: "route-6"},
	{Lat: -23.5366, Lng: -46.6779, Name: "Perdizes", BaseTempOffset: 4.5, RouteID: "route-5"},
	{Lat: -23.5256, Lng: -46.6643, Name: "Barra Funda", BaseTempOffset: 4.5, RouteID: "route-4"},
	{Lat: -23.5279, Lng: -46.7033, Name: "Lapa", BaseTempOffset: 3.5, RouteID: "route-5"},
	{Lat: -23.5217, Lng: -46.6869, Name: "Água Branca", BaseTempOffset: 4.0, RouteID: "route-5"},
	{Lat: -23.5020, Lng: -46.6253, Name: "Santana", BaseTempOffset: 4.5, RouteID: "route-3"},
	{Lat: -23.4800, Lng: -46.6030, Name: "Tucuruvi", BaseTempOffset: 3.5, RouteID: "route-2"},
	{Lat: -23.5100, Lng: -46.6610, Name: "Casa Verde", BaseTempOffset: 4.5, RouteID: "route-4"},
	{Lat: -23.5120, Lng: -46.6050, Name: "Vila Guilherme", BaseTempOffset: 4.5, RouteID: "route-2"},
	{Lat: -23.5400, Lng: -46.5760, Name: "Tatuapé", BaseTempOffset: 4.0, RouteID: "route-1"},
	{Lat: -23.5430, Lng: -46.5930, Name: "Belém", BaseTempOffset: 4.5, RouteID: "route-1"},
	{Lat: -23.5230, Lng: -46.5430, Name: "Penha", BaseTempOffset: 3.0, RouteID: "route-1"},
	{Lat: -23.5870, Lng: -46.5820, Name: "Vila Prudente", BaseTempOffset: 4.0, RouteID: "route-9"},
	{Lat: -23.5890, Lng: -46.6060, Name: "Ipiranga", BaseTempOffset: 4.5, RouteID: "route-9"},
	{Lat: -23.6180, Lng: -46.6390, Name: "Saúde", BaseTempOffset: 3.5, RouteID: "route-8"},
	{Lat: -23.6460, Lng: -46.6410, Name: "Jabaquara", BaseTempOffset: 3.0, RouteID: "route-8"},
	{Lat: -23.6000, Lng: -46.6650, Name: "Moema", BaseTempOffset: 4.0, RouteID: "route-7"},
	{Lat: -23.5850, Lng: -46.6800, Name: "Itaim Bibi", BaseTempOffset: 4.0, RouteID: "route-7"},
	{Lat: -23.6120, Lng: -46.6910, Name: "Brooklin", BaseTempOffset: 3.5, RouteID: "route-7"},
	{Lat: -23.6200, Lng: -46.6720, Name: "Campo Belo", BaseTempOffset: 3.5, RouteID: "route-7"},
	{Lat: -23.6540, Lng: -46.7090, Name: "Santo Amaro", BaseTempOffset: 2.0, RouteID: "route-7"},
	{Lat: -23.6133, Lng: -46.7033, Name: "Morumbi", BaseTempOffset: 3.0, RouteID: "route-7"},
	{Lat: -23.5710, Lng: -46.7080, Name: "Butantã", BaseTempOffset: 3.5, RouteID: "route-6"},
	{Lat: -23.5960, Lng: -46.7360, Name: "Vila Sônia", BaseTempOffset: 2.5, RouteID: "route-6"},
	{Lat: -23.5680, Lng: -46.7530, Name: "Rio Pequeno", BaseTempOffset: 2.5, RouteID: "route-6"},
	{Lat: -23.5470, Lng: -46.7480, Name: "Jaguaré", BaseTempOffset: 2.5, RouteID: "route-5"},
	{Lat: -23.5270, Lng: -46.7330, Name: "Vila Leopoldina", BaseTempOffset: 3.0, RouteID: "route-5"},
	{Lat: -23.4860, Lng: -46.7260, Name: "Pirituba", BaseTempOffset: 2.5, RouteID: "route-4"},
	{Lat: -23.4960, Lng: -46.6960, Name: "Freguesia do Ó", BaseTempOffset: 3.5, RouteID: "route-4"},
	{Lat: -23.5060, Lng: -46.6770, Name: "Limão", BaseTempOffset: 4.0, RouteID: "route-4"},
	{Lat: -23.5130, Lng: -46.5810, Name: "Vila Maria", BaseTempOffset: 4.0, RouteID: "route-2"},
	{Lat: -23.5520, Lng: -46.5470, Name: "Carrão", BaseTempOffset: 3.5, RouteID: "route-10"},
	{Lat: -23.5660, Lng: -46.5140, Name: "Aricanduva", BaseTempOffset: 2.5, RouteID: "route-10"},
	{Lat: -23.6050, Lng: -46.5120, Name: "Sapopemba", BaseTempOffset: 2.0, RouteID: "route-10"},
	{Lat: -23.6100, Lng: -46.4770, Name: "São Mateus", BaseTempOffset: 1.0, RouteID: "route-10"},
	{Lat: -23.5400, Lng: -46.4560, Name: "Itaquera", BaseTempOffset: 0.5, RouteID: "route-1"},
	{Lat: -23.5440, Lng: -46.4120, Name: "Guaianases", BaseTempOffset: 0.0, RouteID: "route-1"},
	{Lat: -23.5820, Lng: -46.4090, Name: "Cidade Tiradentes", BaseTempOffset: 0.0, RouteID: "route-10"},
	{Lat: -23.4990, Lng: -46.4440, Name: "São Miguel Paulista", BaseTempOffset: 0.0, RouteID: "route-1"},
	{Lat: -23.4960, Lng: -46.4800, Name: "Ermelino Matarazzo", BaseTempOffset: 1.0, RouteID: "route-1"},
	{Lat: -23.5020, Lng: -46.5200, Name: "Cangaíba", BaseTempOffset: 2.0, RouteID: "route-1"},
	{Lat: -23.5360, Lng: -46.5290, Name: "Vila Matilde", BaseTempOffset: 3.0, RouteID: "route-1"},
	{Lat: -23.6170, Lng: -46.6230, Name: "Cursino", BaseTempOffset: 4.0, RouteID: "route-8"},
	{Lat: -23.6010, Lng: -46.6010, Name: "Sacomã", BaseTempOffset: 4.0, RouteID: "route-9"},
	{Lat: -23.6720, Lng: -46.6500, Name: "Cidade Ademar", BaseTempOffset: 2.0, RouteID: "route-8"},
	{Lat: -23.6970, Lng: -46.6460, Name: "Pedreira", BaseTempOffset: 1.0, RouteID: "route-8"},
	{Lat: -23.6770, Lng: -46.6880, Name: "Campo Grande", BaseTempOffset: 1.5, RouteID: "route-7"},
	{Lat: -23.6670, Lng: -46.7040, Name: "Socorro", BaseTempOffset: 1.5, RouteID: "route-7"},
	{Lat: -23.6320, Lng: -46.7600, Name: "Campo Limpo", BaseTempOffset: 1.5, RouteID: "route-6"},
	{Lat: -23.6700, Lng: -46.7790, Name: "Capão Redondo", BaseTempOffset: 0.0, RouteID: "route-7"},
	{Lat: -23.7100, Lng: -46.7700, Name: "Jardim Ângela", BaseTempOffset: 0.0, RouteID: "route-7"},
	{Lat: -23.6810, Lng: -46.7380, Name: "Jardim São Luís", BaseTempOffset: 0.5, RouteID: "route-7"},
	{Lat: -23.7700, Lng: -46.6960, Name: "Grajaú", BaseTempOffset: 0.0, RouteID: "route-8"},
	{Lat: -23.8300, Lng: -46.7290, Name: "Parelheiros", BaseTempOffset: 0.0, RouteID: "route-8"},
	{Lat: -23.7150, Lng: -46.7000, Name: "Cidade Dutra", BaseTempOffset: 0.0, RouteID: "route-7"},
	{Lat: -23.4530, Lng: -46.7420, Name: "Jaraguá", BaseTempOffset: 1.5, RouteID: "route-4"},
	{Lat: -23.4050, Lng: -46.7530, Name: "Perus", BaseTempOffset: 0.0, RouteID: "route-4"},
	{Lat: -23.4640, Lng: -46.6890, Name: "Brasilândia", BaseTempOffset: 2.5, RouteID: "route-4"},
	{Lat: -23.4730, Lng: -46.6660, Name: "Cachoeirinha", BaseTempOffset: 3.0, RouteID: "route-4"},
	{Lat: -23.4860, Lng: -46.6330, Name: "Mandaqui", BaseTempOffset: 4.0, RouteID: "route-3"},
	{Lat: -23.4590, Lng: -46.6080, Name: "Tremembé", BaseTempOffset: 3.0, RouteID: "route-3"},
	{Lat: -23.4610, Lng: -46.5830, Name: "Jaçanã", BaseTempOffset: 2.5, RouteID: "route-2"},
	{Lat: -23.5580, Lng: -46.5760, Name: "Água Rasa", BaseTempOffset: 4.0, RouteID: "route-10"},
}

// Locations returns the sensor fixtures with device ids assigned.
// A device id is device-<routeId>-<n>, n counting fixtures of the same route in order.
func Locations() []domain.Location {
	out := make([]domain.Location, len(fixtures))
	perRoute := make(map[string]int)
	for i, loc := range fixtures {
		loc.DeviceID = fmt.Sprintf("device-%s-%d", loc.RouteID, perRoute[loc.RouteID])
		perRoute[loc.RouteID]++
		out[i] = loc
	}
	return out
}
