package catalog

import "github.com/mesh-intelligence/lamp/pkg/types"

// seedBooks is the full 66-book canon in canonical order (KJV naming).
var seedBooks = []types.Book{
	{ID: 1, Name: "Genesis", Testament: types.TestamentOld, ChapterCount: 50},
	{ID: 2, Name: "Exodus", Testament: types.TestamentOld, ChapterCount: 40},
	{ID: 3, Name: "Leviticus", Testament: types.TestamentOld, ChapterCount: 27},
	{ID: 4, Name: "Numbers", Testament: types.TestamentOld, ChapterCount: 36},
	{ID: 5, Name: "Deuteronomy", Testament: types.TestamentOld, ChapterCount: 34},
	{ID: 6, Name: "Joshua", Testament: types.TestamentOld, ChapterCount: 24},
	{ID: 7, Name: "Judges", Testament: types.TestamentOld, ChapterCount: 21},
	{ID: 8, Name: "Ruth", Testament: types.TestamentOld, ChapterCount: 4},
	{ID: 9, Name: "1 Samuel", Testament: types.TestamentOld, ChapterCount: 31},
	{ID: 10, Name: "2 Samuel", Testament: types.TestamentOld, ChapterCount: 24},
	{ID: 11, Name: "1 Kings", Testament: types.TestamentOld, ChapterCount: 22},
	{ID: 12, Name: "2 Kings", Testament: types.TestamentOld, ChapterCount: 25},
	{ID: 13, Name: "1 Chronicles", Testament: types.TestamentOld, ChapterCount: 29},
	{ID: 14, Name: "2 Chronicles", Testament: types.TestamentOld, ChapterCount: 36},
	{ID: 15, Name: "Ezra", Testament: types.TestamentOld, ChapterCount: 10},
	{ID: 16, Name: "Nehemiah", Testament: types.TestamentOld, ChapterCount: 13},
	{ID: 17, Name: "Esther", Testament: types.TestamentOld, ChapterCount: 10},
	{ID: 18, Name: "Job", Testament: types.TestamentOld, ChapterCount: 42},
	{ID: 19, Name: "Psalms", Testament: types.TestamentOld, ChapterCount: 150},
	{ID: 20, Name: "Proverbs", Testament: types.TestamentOld, ChapterCount: 31},
	{ID: 21, Name: "Ecclesiastes", Testament: types.TestamentOld, ChapterCount: 12},
	{ID: 22, Name: "Song of Solomon", Testament: types.TestamentOld, ChapterCount: 8},
	{ID: 23, Name: "Isaiah", Testament: types.TestamentOld, ChapterCount: 66},
	{ID: 24, Name: "Jeremiah", Testament: types.TestamentOld, ChapterCount: 52},
	{ID: 25, Name: "Lamentations", Testament: types.TestamentOld, ChapterCount: 5},
	{ID: 26, Name: "Ezekiel", Testament: types.TestamentOld, ChapterCount: 48},
	{ID: 27, Name: "Daniel", Testament: types.TestamentOld, ChapterCount: 12},
	{ID: 28, Name: "Hosea", Testament: types.TestamentOld, ChapterCount: 14},
	{ID: 29, Name: "Joel", Testament: types.TestamentOld, ChapterCount: 3},
	{ID: 30, Name: "Amos", Testament: types.TestamentOld, ChapterCount: 9},
	{ID: 31, Name: "Obadiah", Testament: types.TestamentOld, ChapterCount: 1},
	{ID: 32, Name: "Jonah", Testament: types.TestamentOld, ChapterCount: 4},
	{ID: 33, Name: "Micah", Testament: types.TestamentOld, ChapterCount: 7},
	{ID: 34, Name: "Nahum", Testament: types.TestamentOld, ChapterCount: 3},
	{ID: 35, Name: "Habakkuk", Testament: types.TestamentOld, ChapterCount: 3},
	{ID: 36, Name: "Zephaniah", Testament: types.TestamentOld, ChapterCount: 3},
	{ID: 37, Name: "Haggai", Testament: types.TestamentOld, ChapterCount: 2},
	{ID: 38, Name: "Zechariah", Testament: types.TestamentOld, ChapterCount: 14},
	{ID: 39, Name: "Malachi", Testament: types.TestamentOld, ChapterCount: 4},
	{ID: 40, Name: "Matthew", Testament: types.TestamentNew, ChapterCount: 28},
	{ID: 41, Name: "Mark", Testament: types.TestamentNew, ChapterCount: 16},
	{ID: 42, Name: "Luke", Testament: types.TestamentNew, ChapterCount: 24},
	{ID: 43, Name: "John", Testament: types.TestamentNew, ChapterCount: 21},
	{ID: 44, Name: "Acts", Testament: types.TestamentNew, ChapterCount: 28},
	{ID: 45, Name: "Romans", Testament: types.TestamentNew, ChapterCount: 16},
	{ID: 46, Name: "1 Corinthians", Testament: types.TestamentNew, ChapterCount: 16},
	{ID: 47, Name: "2 Corinthians", Testament: types.TestamentNew, ChapterCount: 13},
	{ID: 48, Name: "Galatians", Testament: types.TestamentNew, ChapterCount: 6},
	{ID: 49, Name: "Ephesians", Testament: types.TestamentNew, ChapterCount: 6},
	{ID: 50, Name: "Philippians", Testament: types.TestamentNew, ChapterCount: 4},
	{ID: 51, Name: "Colossians", Testament: types.TestamentNew, ChapterCount: 4},
	{ID: 52, Name: "1 Thessalonians", Testament: types.TestamentNew, ChapterCount: 5},
	{ID: 53, Name: "2 Thessalonians", Testament: types.TestamentNew, ChapterCount: 3},
	{ID: 54, Name: "1 Timothy", Testament: types.TestamentNew, ChapterCount: 6},
	{ID: 55, Name: "2 Timothy", Testament: types.TestamentNew, ChapterCount: 4},
	{ID: 56, Name: "Titus", Testament: types.TestamentNew, ChapterCount: 3},
	{ID: 57, Name: "Philemon", Testament: types.TestamentNew, ChapterCount: 1},
	{ID: 58, Name: "Hebrews", Testament: types.TestamentNew, ChapterCount: 13},
	{ID: 59, Name: "James", Testament: types.TestamentNew, ChapterCount: 5},
	{ID: 60, Name: "1 Peter", Testament: types.TestamentNew, ChapterCount: 5},
	{ID: 61, Name: "2 Peter", Testament: types.TestamentNew, ChapterCount: 3},
	{ID: 62, Name: "1 John", Testament: types.TestamentNew, ChapterCount: 5},
	{ID: 63, Name: "2 John", Testament: types.TestamentNew, ChapterCount: 1},
	{ID: 64, Name: "3 John", Testament: types.TestamentNew, ChapterCount: 1},
	{ID: 65, Name: "Jude", Testament: types.TestamentNew, ChapterCount: 1},
	{ID: 66, Name: "Revelation", Testament: types.TestamentNew, ChapterCount: 22},
}

// seedVerse is one curated KJV verse. Its catalog id is its 1-based
// position in seedVerses.
type seedVerse struct {
	book, chapter, verse int
	text                 string
}

// seedVerses is a curated subset of chapters and verses; most chapters of
// most books are absent.
var seedVerses = []seedVerse{
	// Genesis
	{1, 1, 1, "In the beginning God created the heaven and the earth."},
	{1, 1, 2, "And the earth was without form, and void; and darkness was upon the face of the deep. And the Spirit of God moved upon the face of the waters."},
	{1, 1, 3, "And God said, Let there be light: and there was light."},
	{1, 1, 4, "And God saw the light, that it was good: and God divided the light from the darkness."},
	{1, 1, 5, "And God called the light Day, and the darkness he called Night. And the evening and the morning were the first day."},
	{1, 1, 26, "And God said, Let us make man in our image, after our likeness: and let them have dominion over the fish of the sea, and over the fowl of the air, and over the cattle, and over all the earth, and over every creeping thing that creepeth upon the earth."},
	{1, 1, 27, "So God created man in his own image, in the image of God created he him; male and female created he them."},
	{1, 1, 28, "And God blessed them, and God said unto them, Be fruitful, and multiply, and replenish the earth, and subdue it: and have dominion over the fish of the sea, and over the fowl of the air, and over every living thing that moveth upon the earth."},

	// Psalms
	{19, 23, 1, "The LORD is my shepherd; I shall not want."},
	{19, 23, 2, "He maketh me to lie down in green pastures: he leadeth me beside the still waters."},
	{19, 23, 3, "He restoreth my soul: he leadeth me in the paths of righteousness for his name's sake."},
	{19, 23, 4, "Yea, though I walk through the valley of the shadow of death, I will fear no evil: for thou art with me; thy rod and thy staff they comfort me."},
	{19, 23, 5, "Thou preparest a table before me in the presence of mine enemies: thou anointest my head with oil; my cup runneth over."},
	{19, 23, 6, "Surely goodness and mercy shall follow me all the days of my life: and I will dwell in the house of the LORD for ever."},
	{19, 91, 1, "He that dwelleth in the secret place of the most High shall abide under the shadow of the Almighty."},
	{19, 91, 2, "I will say of the LORD, He is my refuge and my fortress: my God; in him will I trust."},
	{19, 91, 3, "Surely he shall deliver thee from the snare of the fowler, and from the noisome pestilence."},
	{19, 91, 4, "He shall cover thee with his feathers, and under his wings shalt thou trust: his truth shall be thy shield and buckler."},

	// Proverbs
	{20, 3, 5, "Trust in the LORD with all thine heart; and lean not unto thine own understanding."},
	{20, 3, 6, "In all thy ways acknowledge him, and he shall direct thy paths."},

	// Isaiah
	{23, 40, 31, "But they that wait upon the LORD shall renew their strength; they shall mount up with wings as eagles; they shall run, and not be weary; and they shall walk, and not faint."},
	{23, 41, 10, "Fear thou not; for I am with thee: be not dismayed; for I am thy God: I will strengthen thee; yea, I will help thee; yea, I will uphold thee with the right hand of my righteousness."},

	// Matthew
	{40, 1, 1, "The book of the generation of Jesus Christ, the son of David, the son of Abraham."},
	{40, 1, 2, "Abraham begat Isaac; and Isaac begat Jacob; and Jacob begat Judas and his brethren;"},
	{40, 5, 3, "Blessed are the poor in spirit: for theirs is the kingdom of heaven."},
	{40, 5, 4, "Blessed are they that mourn: for they shall be comforted."},
	{40, 5, 5, "Blessed are the meek: for they shall inherit the earth."},
	{40, 5, 6, "Blessed are they which do hunger and thirst after righteousness: for they shall be filled."},
	{40, 5, 7, "Blessed are the merciful: for they shall obtain mercy."},
	{40, 5, 8, "Blessed are the pure in heart: for they shall see God."},
	{40, 5, 9, "Blessed are the peacemakers: for they shall be called the children of God."},
	{40, 5, 10, "Blessed are they which are persecuted for righteousness' sake: for theirs is the kingdom of heaven."},
	{40, 6, 9, "After this manner therefore pray ye: Our Father which art in heaven, Hallowed be thy name."},
	{40, 6, 10, "Thy kingdom come. Thy will be done in earth, as it is in heaven."},
	{40, 6, 11, "Give us this day our daily bread."},
	{40, 6, 12, "And forgive us our debts, as we forgive our debtors."},
	{40, 6, 13, "And lead us not into temptation, but deliver us from evil: For thine is the kingdom, and the power, and the glory, for ever. Amen."},

	// Mark
	{41, 1, 1, "The beginning of the gospel of Jesus Christ, the Son of God;"},
	{41, 1, 2, "As it is written in the prophets, Behold, I send my messenger before thy face, which shall prepare thy way before thee."},

	// Luke
	{42, 1, 1, "Forasmuch as many have taken in hand to set forth in order a declaration of those things which are most surely believed among us,"},
	{42, 1, 2, "Even as they delivered them unto us, which from the beginning were eyewitnesses, and ministers of the word;"},
	{42, 2, 7, "And she brought forth her firstborn son, and wrapped him in swaddling clothes, and laid him in a manger; because there was no room for them in the inn."},
	{42, 2, 8, "And there were in the same country shepherds abiding in the field, keeping watch over their flock by night."},
	{42, 2, 9, "And, lo, the angel of the Lord came upon them, and the glory of the Lord shone round about them: and they were sore afraid."},
	{42, 2, 10, "And the angel said unto them, Fear not: for, behold, I bring you good tidings of great joy, which shall be to all people."},
	{42, 2, 11, "For unto you is born this day in the city of David a Saviour, which is Christ the Lord."},
	{42, 2, 12, "And this shall be a sign unto you; Ye shall find the babe wrapped in swaddling clothes, lying in a manger."},

	// John
	{43, 1, 1, "In the beginning was the Word, and the Word was with God, and the Word was God."},
	{43, 1, 2, "The same was in the beginning with God."},
	{43, 1, 3, "All things were made by him; and without him was not any thing made that was made."},
	{43, 1, 4, "In him was life; and the life was the light of men."},
	{43, 1, 5, "And the light shineth in darkness; and the darkness comprehended it not."},
	{43, 1, 14, "And the Word was made flesh, and dwelt among us, (and we beheld his glory, the glory as of the only begotten of the Father,) full of grace and truth."},
	{43, 3, 16, "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
	{43, 3, 17, "For God sent not his Son into the world to condemn the world; but that the world through him might be saved."},
	{43, 14, 6, "Jesus saith unto him, I am the way, the truth, and the life: no man cometh unto the Father, but by me."},
	{43, 14, 27, "Peace I leave with you, my peace I give unto you: not as the world giveth, give I unto you. Let not your heart be troubled, neither let it be afraid."},

	// Romans
	{45, 8, 28, "And we know that all things work together for good to them that love God, to them who are the called according to his purpose."},
	{45, 8, 31, "What shall we then say to these things? If God be for us, who can be against us?"},
	{45, 8, 32, "He that spared not his own Son, but delivered him up for us all, how shall he not with him also freely give us all things?"},
	{45, 8, 35, "Who shall separate us from the love of Christ? shall tribulation, or distress, or persecution, or famine, or nakedness, or peril, or sword?"},
	{45, 8, 37, "Nay, in all these things we are more than conquerors through him that loved us."},
	{45, 8, 38, "For I am persuaded, that neither death, nor life, nor angels, nor principalities, nor powers, nor things present, nor things to come,"},
	{45, 8, 39, "Nor height, nor depth, nor any other creature, shall be able to separate us from the love of God, which is in Christ Jesus our Lord."},

	// 1 Corinthians
	{46, 13, 4, "Charity suffereth long, and is kind; charity envieth not; charity vaunteth not itself, is not puffed up,"},
	{46, 13, 5, "Doth not behave itself unseemly, seeketh not her own, is not easily provoked, thinketh no evil;"},
	{46, 13, 6, "Rejoiceth not in iniquity, but rejoiceth in the truth;"},
	{46, 13, 7, "Beareth all things, believeth all things, hopeth all things, endureth all things."},
	{46, 13, 8, "Charity never faileth: but whether there be prophecies, they shall fail; whether there be tongues, they shall cease; whether there be knowledge, it shall vanish away."},
	{46, 13, 13, "And now abideth faith, hope, charity, these three; but the greatest of these is charity."},

	// Philippians
	{50, 4, 13, "I can do all things through Christ which strengtheneth me."},
	{50, 4, 19, "But my God shall supply all your need according to his riches in glory by Christ Jesus."},

	// Hebrews
	{58, 11, 1, "Now faith is the substance of things hoped for, the evidence of things not seen."},
	{58, 11, 6, "But without faith it is impossible to please him: for he that cometh to God must believe that he is, and that he is a rewarder of them that diligently seek him."},

	// Revelation
	{66, 21, 4, "And God shall wipe away all tears from their eyes; and there shall be no more death, neither sorrow, nor crying, neither shall there be any more pain: for the former things are passed away."},
	{66, 21, 5, "And he that sat upon the throne said, Behold, I make all things new. And he said unto me, Write: for these words are true and faithful."},
}
