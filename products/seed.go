package products

import "puntogo/models"

// SeedCatalog is the built-in catalog the storefront falls back to when the
// remote product feed is unavailable or not configured.
func SeedCatalog() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Title:         "Whisky Johnnie Walker Black Label 750ml",
			Price:         119.90,
			OriginalPrice: 149.90,
			Rating:        5,
			Image:         "https://images.unsplash.com/photo-1527281400683-1aadd77fa1f5?auto=format&fit=crop&q=80&w=600",
			Description:   "El referente de los whiskies de mezcla de lujo. Johnnie Walker Black Label es un whisky escocés rico, complejo y bien equilibrado, con notas a frutos del bosque, vainilla y tierra ahumada.",
			Details:       "Origen: Escocia\nVolumen: 750ml\nGraduación: 40% ABV\nTipo: Blended Scotch Whisky\nNotas de cata: Notas ahumadas, miel, frutas secas y un toque de vainilla.",
			Category:      "Whiskys",
			Stock:         18,
		},
		{
			ID:            "2",
			Title:         "Pack Cerveza Corona Extra 330ml x 12",
			Price:         54.90,
			OriginalPrice: 65.00,
			Rating:        4,
			Image:         "https://images.unsplash.com/photo-1608270586620-248524c67de9?auto=format&fit=crop&q=80&w=600",
			Description:   "La cerveza mexicana más vendida del mundo. Corona Extra es una cerveza tipo pilsner, ligera y refrescante, ideal para acompañar con un limón.",
			Details:       "Origen: México\nVolumen: 330ml x 12\nGraduación: 4.5% ABV\nTipo: Lager\nEstilo: Pilsner",
			Category:      "Cervezas",
			Stock:         40,
		},
		{
			ID:          "3",
			Title:       "Ron Flor de Caña 12 Años Centenario",
			Price:       169.90,
			Rating:      5,
			Image:       "https://images.unsplash.com/photo-1619451334792-150fd785ee74?auto=format&fit=crop&q=80&w=600",
			Description: "Un ron ultra premium de 12 años, de cuerpo entero y color rojizo ámbar. Posee aromas a frutos rojos, miel y nueces tostadas.",
			Details:     "Origen: Nicaragua\nVolumen: 750ml\nGraduación: 40% ABV\nTipo: Ron Añejo\nEnvejecimiento: 12 años",
			Category:    "Licores",
			Stock:       12,
		},
		{
			ID:            "4",
			Title:         "Vino Tinto Malbec Reserva Casillero",
			Price:         39.90,
			OriginalPrice: 55.00,
			Rating:        4,
			Image:         "https://images.unsplash.com/photo-1559563179-1d4464c74670?auto=format&fit=crop&q=80&w=600",
			Description:   "Un vino tinto chileno clásico. Notas de ciruelas negras y especias, con un toque de chocolate y vainilla gracias a su guarda en barrica.",
			Details:       "Origen: Chile\nVolumen: 750ml\nGraduación: 13.5% ABV\nTipo: Vino Tinto\nVarietal: Malbec",
			Category:      "Vinos",
			Stock:         30,
		},
		{
			ID:            "5",
			Title:         "Ginebra Bombay Sapphire London Dry",
			Price:         99.90,
			OriginalPrice: 120.00,
			Rating:        3,
			Image:         "https://images.unsplash.com/photo-1606131731446-5568d87113aa?auto=format&fit=crop&q=80&w=600",
			Description:   "Ginebra premium mundialmente famosa por su botella azul. Elaborada con 10 botánicos seleccionados a mano de todo el mundo.",
			Details:       "Origen: Reino Unido\nVolumen: 750ml\nGraduación: 40% ABV\nTipo: Ginebra London Dry\nBotánicos: 10 variedades",
			Category:      "Licores",
			Stock:         15,
		},
		{
			ID:          "6",
			Title:       "Vodka Absolut Original 750ml",
			Price:       45.00,
			Rating:      4,
			Image:       "https://images.unsplash.com/photo-1613208602569-2f22f5341f53?auto=format&fit=crop&q=80&w=600",
			Description: "Vodka sueco elaborado exclusivamente con ingredientes naturales. Rico, con cuerpo y complejo, pero suave y maduro.",
			Details:     "Origen: Suecia\nVolumen: 750ml\nGraduación: 40% ABV\nTipo: Vodka\nIngredientes: Trigo de invierno y agua",
			Category:    "Licores",
			Stock:       25,
		},
		{
			ID:            "7",
			Title:         "Jagermeister Licor de Hierbas 700ml",
			Price:         75.50,
			OriginalPrice: 89.90,
			Rating:        5,
			Image:         "https://images.unsplash.com/photo-1623625434462-e5e42318ae49?auto=format&fit=crop&q=80&w=600",
			Description:   "Licor de hierbas alemán elaborado con 56 hierbas, frutas, raíces y especias. Se sirve mejor helado.",
			Details:       "Origen: Alemania\nVolumen: 700ml\nGraduación: 35% ABV\nTipo: Licor de Hierbas\nIngredientes: 56 hierbas y especias",
			Category:      "Licores",
			Stock:         0,
		},
		{
			ID:          "8",
			Title:       "Six Pack Cerveza Artesanal Barbarian",
			Price:       45.00,
			Rating:      4,
			Image:       "https://images.unsplash.com/photo-1600213901697-dd144431e3df?auto=format&fit=crop&q=80&w=600",
			Description: "Cerveza artesanal peruana con actitud. Un pack variado para probar los mejores estilos de la casa.",
			Details:     "Origen: Perú\nVolumen: 330ml x 6\nGraduación: Variable\nTipo: Cerveza Artesanal\nEstilos: Variados",
			Category:    "Cervezas",
			Stock:       22,
		},
	}
}
