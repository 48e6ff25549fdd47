package lookup

import "github.com/ravenclaw900/dst-farming-ui/internal/plant"

// table holds every listed recipe by ratio, then season. A season missing from
// a ratio's map has no recipes at that ratio.
var table = map[plant.CropRatio]map[plant.Season][][]plant.ID{
	plant.OneOne: {
		plant.Autumn: {
			{plant.TomaRoot, plant.Eggplant},
			{plant.TomaRoot, plant.Potato},
		},
		plant.Spring: {
			{plant.Carrot, plant.Watermelon},
			{plant.Potato, plant.TomaRoot},
			{plant.TomaRoot, plant.Eggplant},
		},
	},
	plant.OneOneOne: {
		plant.Summer: {
			{plant.TomaRoot, plant.TomaRoot, plant.DragonFruit},
			{plant.TomaRoot, plant.TomaRoot, plant.Pepper},
			{plant.Watermelon, plant.Watermelon, plant.Onion},
			{plant.Watermelon, plant.Watermelon, plant.Pomegranate},
			{plant.DragonFruit, plant.Garlic, plant.Onion},
			{plant.DragonFruit, plant.Garlic, plant.Pomegranate},
			{plant.Garlic, plant.Onion, plant.Pepper},
			{plant.Garlic, plant.Pepper, plant.Pomegranate},
		},
		plant.Winter: {
			{plant.Carrot, plant.Potato, plant.Asparagus},
			{plant.Potato, plant.Asparagus, plant.Pumpkin},
		},
		plant.Autumn: {
			{plant.Carrot, plant.Corn, plant.Potato},
			{plant.Carrot, plant.Corn, plant.Eggplant},
			{plant.Corn, plant.Potato, plant.Pumpkin},
			{plant.Corn, plant.Eggplant, plant.Pumpkin},
			{plant.TomaRoot, plant.TomaRoot, plant.Pepper},
			{plant.Garlic, plant.Onion, plant.Pepper},
		},
		plant.Spring: {
			{plant.Carrot, plant.Corn, plant.Potato},
			{plant.Carrot, plant.Corn, plant.Eggplant},
			{plant.Carrot, plant.Potato, plant.Asparagus},
			{plant.Carrot, plant.Asparagus, plant.Eggplant},
			{plant.TomaRoot, plant.TomaRoot, plant.DragonFruit},
			{plant.Watermelon, plant.Watermelon, plant.Onion},
			{plant.Watermelon, plant.Watermelon, plant.Pomegranate},
			{plant.DragonFruit, plant.Durian, plant.Onion},
			{plant.DragonFruit, plant.Durian, plant.Pomegranate},
			{plant.DragonFruit, plant.Garlic, plant.Onion},
			{plant.DragonFruit, plant.Garlic, plant.Pomegranate},
		},
	},
	plant.TwoOne: {
		plant.Summer: {
			{plant.TomaRoot, plant.TomaRoot, plant.DragonFruit},
			{plant.TomaRoot, plant.TomaRoot, plant.Pepper},
			{plant.Watermelon, plant.Watermelon, plant.Onion},
			{plant.Watermelon, plant.Watermelon, plant.Pomegranate},
		},
		plant.Autumn: {
			{plant.TomaRoot, plant.TomaRoot, plant.Pepper},
		},
		plant.Spring: {
			{plant.TomaRoot, plant.TomaRoot, plant.DragonFruit},
			{plant.Watermelon, plant.Watermelon, plant.Onion},
			{plant.Watermelon, plant.Watermelon, plant.Pomegranate},
		},
	},
	plant.TwoOneOne: {
		plant.Summer: {
			{plant.Corn, plant.Corn, plant.DragonFruit, plant.Onion},
			{plant.Corn, plant.Corn, plant.DragonFruit, plant.Pomegranate},
			{plant.Corn, plant.Corn, plant.Onion, plant.Pepper},
			{plant.Corn, plant.Corn, plant.Pepper, plant.Pomegranate},
		},
		plant.Autumn: {
			{plant.Carrot, plant.Carrot, plant.Garlic, plant.Pepper},
			{plant.Corn, plant.Corn, plant.Onion, plant.Pepper},
			{plant.Potato, plant.Potato, plant.TomaRoot, plant.TomaRoot},
			{plant.Potato, plant.Potato, plant.Garlic, plant.Onion},
			{plant.TomaRoot, plant.TomaRoot, plant.Potato, plant.Potato},
			{plant.TomaRoot, plant.TomaRoot, plant.Potato, plant.Eggplant},
			{plant.TomaRoot, plant.TomaRoot, plant.Eggplant, plant.Eggplant},
			{plant.Eggplant, plant.Eggplant, plant.TomaRoot, plant.TomaRoot},
			{plant.Eggplant, plant.Eggplant, plant.Garlic, plant.Onion},
			{plant.Pumpkin, plant.Pumpkin, plant.Garlic, plant.Pepper},
		},
		plant.Spring: {
			{plant.Carrot, plant.Carrot, plant.Watermelon, plant.Watermelon},
			{plant.Carrot, plant.Carrot, plant.DragonFruit, plant.Durian},
			{plant.Carrot, plant.Carrot, plant.DragonFruit, plant.Garlic},
			{plant.Corn, plant.Corn, plant.DragonFruit, plant.Onion},
			{plant.Corn, plant.Corn, plant.DragonFruit, plant.Pomegranate},
			{plant.Potato, plant.Potato, plant.TomaRoot, plant.TomaRoot},
			{plant.Potato, plant.Potato, plant.Durian, plant.Onion},
			{plant.Potato, plant.Potato, plant.Durian, plant.Pomegranate},
			{plant.Potato, plant.Potato, plant.Garlic, plant.Onion},
			{plant.Potato, plant.Potato, plant.Garlic, plant.Pomegranate},
			{plant.TomaRoot, plant.TomaRoot, plant.Potato, plant.Potato},
			{plant.TomaRoot, plant.TomaRoot, plant.Potato, plant.Eggplant},
			{plant.TomaRoot, plant.TomaRoot, plant.Eggplant, plant.Eggplant},
			{plant.Asparagus, plant.Asparagus, plant.DragonFruit, plant.Onion},
			{plant.Asparagus, plant.Asparagus, plant.DragonFruit, plant.Pomegranate},
			{plant.Eggplant, plant.Eggplant, plant.TomaRoot, plant.TomaRoot},
			{plant.Eggplant, plant.Eggplant, plant.Durian, plant.Onion},
			{plant.Eggplant, plant.Eggplant, plant.Durian, plant.Pomegranate},
			{plant.Eggplant, plant.Eggplant, plant.Garlic, plant.Onion},
			{plant.Eggplant, plant.Eggplant, plant.Garlic, plant.Pomegranate},
			{plant.Watermelon, plant.Watermelon, plant.Carrot, plant.Carrot},
		},
	},
}
